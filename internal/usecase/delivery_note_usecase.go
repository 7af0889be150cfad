package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"albaranes/internal/domain/entities"
	"albaranes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoteNotFound     = errors.New("delivery note not found")
	ErrInvalidNoteID    = errors.New("invalid delivery note id")
	ErrInvalidNoteInput = errors.New("invalid delivery note input")

	// ErrNotePending guards hard deletion: a pending note has no anchored
	// PDF and must never be destroyed irrecoverably.
	ErrNotePending = errors.New("cannot destroy unsigned delivery note")
)

// CreateNoteInput carries the caller-validated fields for a new note.
// Format/hours pairing is enforced at the API boundary; this layer only
// guards referential completeness.
type CreateNoteInput struct {
	UserID      string
	ClientID    string
	ProjectID   string
	Format      entities.NoteFormat
	Hours       float64
	Description string
}

// IDeliveryNoteUseCase exposes the delivery-note lifecycle operations:
// creation, resolved reads, pending-phase updates, archival (soft delete
// + restore) and the guarded hard delete.

type IDeliveryNoteUseCase interface {
	Create(ctx context.Context, in CreateNoteInput) (entities.DeliveryNote, error)
	GetByID(ctx context.Context, id string) (entities.DeliveryNoteView, error)
	List(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNoteView, error)
	Update(ctx context.Context, id string, patch entities.NotePatch) (entities.DeliveryNote, error)
	SoftDelete(ctx context.Context, id string) (entities.DeliveryNote, error)
	Restore(ctx context.Context, id string) (entities.DeliveryNote, error)
	ListArchived(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNoteView, error)
	HardDelete(ctx context.Context, id string) error
}

type DeliveryNoteUseCase struct {
	repo      interfaces.IDeliveryNoteRepository
	directory interfaces.IPartyDirectory
}

var _ IDeliveryNoteUseCase = (*DeliveryNoteUseCase)(nil)

func NewDeliveryNoteUseCase(repo interfaces.IDeliveryNoteRepository, directory interfaces.IPartyDirectory) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{repo: repo, directory: directory}
}

func (u *DeliveryNoteUseCase) Create(ctx context.Context, in CreateNoteInput) (entities.DeliveryNote, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	if in.UserID == "" || in.ClientID == "" || in.ProjectID == "" {
		return entities.DeliveryNote{}, ErrInvalidNoteInput
	}
	if in.Format != entities.NoteFormatHours && in.Format != entities.NoteFormatMaterial {
		return entities.DeliveryNote{}, ErrInvalidNoteInput
	}

	now := time.Now().UTC()
	n := entities.DeliveryNote{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		ClientID:    in.ClientID,
		ProjectID:   in.ProjectID,
		Format:      in.Format,
		Hours:       in.Hours,
		Description: in.Description,
		Pending:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, n)
}

func (u *DeliveryNoteUseCase) GetByID(ctx context.Context, id string) (entities.DeliveryNoteView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeliveryNoteView{}, ErrInvalidNoteID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DeliveryNoteView{}, err
	}
	if n.ID == "" {
		return entities.DeliveryNoteView{}, ErrNoteNotFound
	}
	return resolveView(ctx, u.directory, n)
}

func (u *DeliveryNoteUseCase) List(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNoteView, error) {
	notes, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return resolveViews(ctx, u.directory, notes)
}

func (u *DeliveryNoteUseCase) Update(ctx context.Context, id string, patch entities.NotePatch) (entities.DeliveryNote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeliveryNote{}, ErrInvalidNoteID
	}
	if patch.ClientID == nil && patch.ProjectID == nil && patch.Hours == nil && patch.Description == nil {
		return entities.DeliveryNote{}, ErrInvalidNoteInput
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.DeliveryNote{}, err
	}
	if updated.ID == "" {
		// The conditional update refused: absent, archived or signed.
		current, gerr := u.repo.GetByID(ctx, id)
		if gerr != nil {
			return entities.DeliveryNote{}, gerr
		}
		if current.ID == "" {
			return entities.DeliveryNote{}, ErrNoteNotFound
		}
		return entities.DeliveryNote{}, ErrNoteAlreadySigned
	}
	return updated, nil
}

func (u *DeliveryNoteUseCase) SoftDelete(ctx context.Context, id string) (entities.DeliveryNote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeliveryNote{}, ErrInvalidNoteID
	}

	n, err := u.repo.SoftDelete(ctx, id)
	if err != nil {
		return entities.DeliveryNote{}, err
	}
	if n.ID == "" {
		return entities.DeliveryNote{}, ErrNoteNotFound
	}
	log.Printf("[note][usecase] archived note_id=%s", n.ID)
	return n, nil
}

func (u *DeliveryNoteUseCase) Restore(ctx context.Context, id string) (entities.DeliveryNote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeliveryNote{}, ErrInvalidNoteID
	}

	n, err := u.repo.Restore(ctx, id)
	if err != nil {
		return entities.DeliveryNote{}, err
	}
	if n.ID == "" {
		return entities.DeliveryNote{}, ErrNoteNotFound
	}
	log.Printf("[note][usecase] restored note_id=%s", n.ID)
	return n, nil
}

func (u *DeliveryNoteUseCase) ListArchived(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNoteView, error) {
	notes, err := u.repo.ListDeleted(ctx, f)
	if err != nil {
		return nil, err
	}
	return resolveViews(ctx, u.directory, notes)
}

// HardDelete permanently removes a signed note. The pending check is
// re-asserted by a conditional delete at the store, so a note signed (or
// reverted) between the read and the delete cannot slip through. Archived
// state does not block destruction; only pending does.
func (u *DeliveryNoteUseCase) HardDelete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNoteID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.ID == "" {
		return ErrNoteNotFound
	}
	if n.Pending {
		log.Printf("[note][usecase] hard delete rejected, note pending note_id=%s", id)
		return ErrNotePending
	}

	deleted, err := u.repo.HardDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		// The conditional delete lost a race: the record changed or
		// vanished after the read above.
		current, gerr := u.repo.GetByID(ctx, id)
		if gerr != nil {
			return gerr
		}
		if current.ID == "" {
			return ErrNoteNotFound
		}
		return ErrNotePending
	}
	log.Printf("[note][usecase] hard deleted note_id=%s", id)
	return nil
}

func resolveView(ctx context.Context, d interfaces.IPartyDirectory, n entities.DeliveryNote) (entities.DeliveryNoteView, error) {
	user, err := d.GetUser(ctx, n.UserID)
	if err != nil {
		return entities.DeliveryNoteView{}, err
	}
	client, err := d.GetClient(ctx, n.ClientID)
	if err != nil {
		return entities.DeliveryNoteView{}, err
	}
	project, err := d.GetProject(ctx, n.ProjectID)
	if err != nil {
		return entities.DeliveryNoteView{}, err
	}
	return entities.DeliveryNoteView{
		DeliveryNote: n,
		User:         user,
		Client:       client,
		Project:      project,
	}, nil
}

func resolveViews(ctx context.Context, d interfaces.IPartyDirectory, notes []entities.DeliveryNote) ([]entities.DeliveryNoteView, error) {
	views := make([]entities.DeliveryNoteView, 0, len(notes))
	for _, n := range notes {
		v, err := resolveView(ctx, d, n)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
