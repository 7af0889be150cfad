package interfaces

import "albaranes/internal/domain/entities"

// IDocumentRenderer produces the PDF representation of a fully-resolved
// note view. Render is pure and deterministic: the same view always
// yields byte-identical output, so re-rendering during a pipeline retry
// re-anchors the same document.
type IDocumentRenderer interface {
	Render(view entities.DeliveryNoteView) ([]byte, error)
}
