package response

import (
	"time"

	"albaranes/internal/domain/entities"
)

type DeliveryNoteResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	ClientID    string     `json:"client_id"`
	ProjectID   string     `json:"project_id"`
	Format      string     `json:"format"`
	Hours       float64    `json:"hours,omitempty"`
	Description string     `json:"description,omitempty"`
	Pending     bool       `json:"pending"`
	Sign        string     `json:"sign,omitempty"`
	PDFURL      string     `json:"pdf_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func FromDeliveryNote(n entities.DeliveryNote) DeliveryNoteResponse {
	return DeliveryNoteResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		ClientID:    n.ClientID,
		ProjectID:   n.ProjectID,
		Format:      string(n.Format),
		Hours:       n.Hours,
		Description: n.Description,
		Pending:     n.Pending,
		Sign:        n.Sign,
		PDFURL:      n.PDFURL,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		DeletedAt:   n.DeletedAt,
	}
}

type PartyUserResponse struct {
	Name     string `json:"name"`
	Surnames string `json:"surnames"`
	Email    string `json:"email"`
}

type PartyClientResponse struct {
	Name string `json:"name"`
	CIF  string `json:"cif"`
}

type PartyProjectResponse struct {
	Name        string `json:"name"`
	ProjectCode string `json:"project_code"`
}

// DeliveryNoteViewResponse is the populated read shape: the note plus
// the joined user/client/project display attributes.
type DeliveryNoteViewResponse struct {
	DeliveryNoteResponse
	User    PartyUserResponse    `json:"user"`
	Client  PartyClientResponse  `json:"client"`
	Project PartyProjectResponse `json:"project"`
}

func FromDeliveryNoteView(v entities.DeliveryNoteView) DeliveryNoteViewResponse {
	return DeliveryNoteViewResponse{
		DeliveryNoteResponse: FromDeliveryNote(v.DeliveryNote),
		User: PartyUserResponse{
			Name:     v.User.Name,
			Surnames: v.User.Surnames,
			Email:    v.User.Email,
		},
		Client: PartyClientResponse{
			Name: v.Client.Name,
			CIF:  v.Client.CIF,
		},
		Project: PartyProjectResponse{
			Name:        v.Project.Name,
			ProjectCode: v.Project.ProjectCode,
		},
	}
}

func FromDeliveryNoteViews(views []entities.DeliveryNoteView) []DeliveryNoteViewResponse {
	out := make([]DeliveryNoteViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromDeliveryNoteView(v))
	}
	return out
}

// SignResponse mirrors the upstream signature endpoint contract:
// {message, sign, pdf, note}.
type SignResponse struct {
	Message string               `json:"message"`
	Sign    string               `json:"sign"`
	PDF     string               `json:"pdf"`
	Note    DeliveryNoteResponse `json:"note"`
}

func FromSignResult(res entities.SignResult, message string) SignResponse {
	return SignResponse{
		Message: message,
		Sign:    res.SignURL,
		PDF:     res.PDFURL,
		Note:    FromDeliveryNote(res.Note),
	}
}

// MessageResponse is the ack body for archival operations.
type MessageResponse struct {
	Message string `json:"message"`
}
