package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"albaranes/internal/domain/entities"
	"albaranes/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// IncompleteViewError reports which joined display fields are missing
// from the view; a note referencing dangling parties cannot be rendered.
type IncompleteViewError struct {
	Missing []string
}

func (e *IncompleteViewError) Error() string {
	return "incomplete note view, missing: " + strings.Join(e.Missing, ", ")
}

// Renderer produces the delivery-note PDF. Output is deterministic for a
// given view: the document creation date is pinned to the note's own
// created_at, so re-rendering during a pipeline retry yields the same
// bytes and the same content address.
type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(view entities.DeliveryNoteView) ([]byte, error) {
	if err := checkView(view); err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(view.CreatedAt.UTC())
	doc.SetModificationDate(view.CreatedAt.UTC())
	doc.AddPage()

	// Core fonts are cp1252; route every string through the translator so
	// accented Spanish labels survive.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, tr("Albarán"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 14)
	line(doc, tr(fmt.Sprintf("ID: %s", view.ID)))
	line(doc, tr(fmt.Sprintf("Fecha: %s", view.CreatedAt.Format("02/01/2006"))))
	doc.Ln(4)

	line(doc, tr(fmt.Sprintf("Cliente: %s (%s)", view.Client.Name, view.Client.CIF)))
	line(doc, tr(fmt.Sprintf("Proyecto: %s (%s)", view.Project.Name, view.Project.ProjectCode)))
	doc.Ln(4)

	line(doc, tr(fmt.Sprintf("Usuario: %s %s (%s)", view.User.Name, view.User.Surnames, view.User.Email)))
	doc.Ln(4)

	line(doc, tr(fmt.Sprintf("Formato: %s", view.Format)))
	if view.Format == entities.NoteFormatHours {
		line(doc, tr(fmt.Sprintf("Horas: %g", view.Hours)))
	}
	doc.Ln(4)

	line(doc, tr(fmt.Sprintf("Descripción: %s", view.Description)))
	doc.Ln(4)

	line(doc, tr(fmt.Sprintf("Firmado: %s", signedLabel(view.Pending))))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func line(doc *fpdf.Fpdf, text string) {
	doc.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
}

func signedLabel(pending bool) string {
	if pending {
		return "No"
	}
	return "Sí"
}

func checkView(view entities.DeliveryNoteView) error {
	var missing []string
	if view.ID == "" {
		missing = append(missing, "id")
	}
	if view.CreatedAt.IsZero() {
		missing = append(missing, "created_at")
	}
	if view.Client.Name == "" {
		missing = append(missing, "client.name")
	}
	if view.Project.Name == "" {
		missing = append(missing, "project.name")
	}
	if view.User.Name == "" {
		missing = append(missing, "user.name")
	}
	if len(missing) > 0 {
		return &IncompleteViewError{Missing: missing}
	}
	return nil
}
