package entities

import "time"

// NoteFormat is the work-record format of a delivery note (albarán).
//
// Domain notes:
//   - "hours" notes carry the worked-hours count in Hours.
//   - Format is fixed at creation time and never patched afterwards.

type NoteFormat string

const (
	NoteFormatHours    NoteFormat = "hours"
	NoteFormatMaterial NoteFormat = "material"
)

// DeliveryNote is the work-record document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - deleted_at present => archived (excluded from active queries)
//
// Lifecycle:
//   - Created pending (awaiting client signature). While pending the note
//     is mutable and may only be archived, never hard-deleted.
//   - Signing sets Sign and clears Pending in one conditional update; the
//     rendered PDF URL is committed afterwards, so a signed note without a
//     PDFURL is a legal intermediate state.
//   - Once signed, the anchored PDF is the canonical record and the note
//     becomes eligible for hard deletion.
type DeliveryNote struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	ClientID    string     `json:"client_id"`
	ProjectID   string     `json:"project_id"`
	Format      NoteFormat `json:"format"`
	Hours       float64    `json:"hours,omitempty"`
	Description string     `json:"description,omitempty"`
	Pending     bool       `json:"pending"`
	Sign        string     `json:"sign,omitempty"`
	PDFURL      string     `json:"pdf_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Signed reports whether the note carries a committed signature.
func (n DeliveryNote) Signed() bool {
	return !n.Pending && n.Sign != ""
}

// Archived reports whether the note is soft-deleted.
func (n DeliveryNote) Archived() bool {
	return n.DeletedAt != nil
}

// UserInfo, ClientInfo and ProjectInfo are the display attributes joined
// onto a note view. The join is read-only; nothing here is persisted back.

type UserInfo struct {
	Name     string `json:"name"`
	Surnames string `json:"surnames"`
	Email    string `json:"email"`
}

type ClientInfo struct {
	Name string `json:"name"`
	CIF  string `json:"cif"`
}

type ProjectInfo struct {
	Name        string `json:"name"`
	ProjectCode string `json:"project_code"`
}

// DeliveryNoteView is a note with its referenced user, client and project
// resolved to display attributes, as served on read endpoints and fed to
// the document renderer.
type DeliveryNoteView struct {
	DeliveryNote
	User    UserInfo    `json:"user"`
	Client  ClientInfo  `json:"client"`
	Project ProjectInfo `json:"project"`
}

// NoteFilter narrows listings. Empty fields are ignored; set fields
// combine with AND semantics.
type NoteFilter struct {
	UserID    string
	ClientID  string
	ProjectID string
}

// NotePatch is the partial update accepted while a note is pending.
// Nil fields are left untouched. ID and CreatedAt are never patchable.
type NotePatch struct {
	ClientID    *string
	ProjectID   *string
	Hours       *float64
	Description *string
}

// SignResult is the outcome of a completed signing pipeline run.
type SignResult struct {
	Note    DeliveryNote `json:"note"`
	SignURL string       `json:"sign_url"`
	PDFURL  string       `json:"pdf_url"`
}
