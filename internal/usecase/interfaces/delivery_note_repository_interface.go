package interfaces

import (
	"context"

	"albaranes/internal/domain/entities"
)

// IDeliveryNoteRepository abstracts DynamoDB persistence for DeliveryNote.
//
// Conventions (shared with the DynamoDB implementation):
//   - "not found" is reported as a zero-value note (ID == ""), never as an
//     error; errors are reserved for store failures.
//   - Active reads exclude archived notes; ListDeleted is the only way to
//     observe them.
//   - CommitSignature and HardDelete are conditional single-record
//     operations so concurrent callers serialize at the store:
//     CommitSignature succeeds only while the note is still pending, and
//     HardDelete only once it no longer is.

type IDeliveryNoteRepository interface {
	Create(ctx context.Context, n entities.DeliveryNote) (entities.DeliveryNote, error)
	GetByID(ctx context.Context, id string) (entities.DeliveryNote, error)
	List(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNote, error)
	Update(ctx context.Context, id string, patch entities.NotePatch) (entities.DeliveryNote, error)
	SoftDelete(ctx context.Context, id string) (entities.DeliveryNote, error)
	Restore(ctx context.Context, id string) (entities.DeliveryNote, error)
	ListDeleted(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNote, error)

	// CommitSignature sets sign and clears pending iff the note exists and
	// is still pending. A zero-value result means the condition failed.
	CommitSignature(ctx context.Context, id, signURL string) (entities.DeliveryNote, error)

	// SetPDFURL anchors the rendered document on an already-signed note.
	SetPDFURL(ctx context.Context, id, pdfURL string) (entities.DeliveryNote, error)

	// HardDelete removes the record iff pending is false. It returns true
	// when a record was actually deleted.
	HardDelete(ctx context.Context, id string) (bool, error)
}
