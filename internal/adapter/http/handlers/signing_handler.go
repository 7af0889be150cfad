package handlers

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	response "albaranes/internal/adapter/http/dto/response"
	"albaranes/internal/usecase"
	"albaranes/pkg"

	"github.com/gin-gonic/gin"
)

// signTimeout bounds the whole pipeline: two blob uploads, two store
// commits and a render.
const signTimeout = 60 * time.Second

// maxSignatureSize caps the uploaded signature image.
const maxSignatureSize = 5 << 20

var errNoImageUploaded = pkg.NewDomainErrorSimple("NO_IMAGE_UPLOADED", "No signature image uploaded", http.StatusBadRequest)

// SigningHandler handles the signature pipeline endpoints and on-demand
// PDF rendering.

type SigningHandler struct {
	usecase usecase.ISigningUseCase
}

func NewSigningHandler(uc usecase.ISigningUseCase) *SigningHandler {
	return &SigningHandler{usecase: uc}
}

// UploadSignature accepts a multipart signature image ("image" field) and
// runs the full signing pipeline.
func (h *SigningHandler) UploadSignature(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[sign][handler] upload start note_id=%s", id)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.Printf("[sign][handler] no image note_id=%s err=%v", id, err)
		c.JSON(errNoImageUploaded.HTTPStatus, errNoImageUploaded.ToHTTPError())
		return
	}
	if fileHeader.Size > maxSignatureSize {
		c.JSON(errNoImageUploaded.HTTPStatus, errNoImageUploaded.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errNoImageUploaded.HTTPStatus, errNoImageUploaded.ToHTTPError())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil || len(image) == 0 {
		c.JSON(errNoImageUploaded.HTTPStatus, errNoImageUploaded.ToHTTPError())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), signTimeout)
	defer cancel()

	result, err := h.usecase.Sign(ctx, id, image, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("[sign][handler] upload failed note_id=%s err=%v", id, err)
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sign][handler] upload success note_id=%s", id)

	c.JSON(http.StatusOK, response.FromSignResult(result, "SIGNATURE_UPLOADED_AND_PDF_SAVED"))
}

// FinishSigning resumes the document stages for a note signed without an
// anchored PDF. Idempotent on already-finished notes.
func (h *SigningHandler) FinishSigning(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[sign][handler] finish start note_id=%s", id)

	ctx, cancel := context.WithTimeout(c.Request.Context(), signTimeout)
	defer cancel()

	result, err := h.usecase.FinishSigning(ctx, id)
	if err != nil {
		log.Printf("[sign][handler] finish failed note_id=%s err=%v", id, err)
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sign][handler] finish success note_id=%s", id)

	c.JSON(http.StatusOK, response.FromSignResult(result, "PDF_SAVED"))
}

// GetDeliveryNotePDF renders the note to a downloadable PDF.
func (h *SigningHandler) GetDeliveryNotePDF(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), signTimeout)
	defer cancel()

	pdf, filename, err := h.usecase.RenderPDF(ctx, c.Param("id"))
	if err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
