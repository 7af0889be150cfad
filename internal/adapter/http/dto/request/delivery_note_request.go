package request

import (
	"errors"
	"strings"

	"albaranes/internal/domain/entities"
)

var (
	ErrMissingHours   = errors.New("hours is required for format hours")
	ErrNothingToPatch = errors.New("empty patch")
)

// CreateDeliveryNoteRequest is the payload for creating a delivery note.
// The format/hours pairing is validated here, at the API boundary.
type CreateDeliveryNoteRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	ClientID    string   `json:"client_id" binding:"required"`
	ProjectID   string   `json:"project_id" binding:"required"`
	Format      string   `json:"format" binding:"required,oneof=hours material"`
	Hours       *float64 `json:"hours"`
	Description string   `json:"description"`
}

func (r CreateDeliveryNoteRequest) Validate() error {
	if entities.NoteFormat(r.Format) == entities.NoteFormatHours && (r.Hours == nil || *r.Hours <= 0) {
		return ErrMissingHours
	}
	return nil
}

func (r CreateDeliveryNoteRequest) ResolveHours() float64 {
	if r.Hours == nil {
		return 0
	}
	return *r.Hours
}

// UpdateDeliveryNoteRequest is the partial update accepted while a note
// is pending. id/created_at/format are deliberately not patchable.
type UpdateDeliveryNoteRequest struct {
	ClientID    *string  `json:"client_id"`
	ProjectID   *string  `json:"project_id"`
	Hours       *float64 `json:"hours"`
	Description *string  `json:"description"`
}

func (r UpdateDeliveryNoteRequest) ToPatch() (entities.NotePatch, error) {
	p := entities.NotePatch{
		ClientID:    r.ClientID,
		ProjectID:   r.ProjectID,
		Hours:       r.Hours,
		Description: r.Description,
	}
	if p.ClientID == nil && p.ProjectID == nil && p.Hours == nil && p.Description == nil {
		return entities.NotePatch{}, ErrNothingToPatch
	}
	if p.ClientID != nil && strings.TrimSpace(*p.ClientID) == "" {
		return entities.NotePatch{}, errors.New("empty client_id")
	}
	if p.ProjectID != nil && strings.TrimSpace(*p.ProjectID) == "" {
		return entities.NotePatch{}, errors.New("empty project_id")
	}
	return p, nil
}

// NoteFilterFromQuery builds the AND-combined listing filter from query
// string values; empty values are ignored.
func NoteFilterFromQuery(userID, clientID, projectID string) entities.NoteFilter {
	return entities.NoteFilter{
		UserID:    strings.TrimSpace(userID),
		ClientID:  strings.TrimSpace(clientID),
		ProjectID: strings.TrimSpace(projectID),
	}
}
