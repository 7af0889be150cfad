package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	request "albaranes/internal/adapter/http/dto/request"
	response "albaranes/internal/adapter/http/dto/response"
	"albaranes/internal/domain/entities"
	"albaranes/internal/usecase"
	"albaranes/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNotePayload = pkg.NewDomainErrorSimple("INVALID_DELIVERY_NOTE_INPUT", "Invalid delivery note payload", http.StatusBadRequest)

// opTimeout bounds every store/directory round-trip behind a handler.
const opTimeout = 15 * time.Second

// DeliveryNoteHandler handles the CRUD and archival endpoints of the
// delivery-note lifecycle. Signing lives in SigningHandler.

type DeliveryNoteHandler struct {
	usecase usecase.IDeliveryNoteUseCase
}

func NewDeliveryNoteHandler(uc usecase.IDeliveryNoteUseCase) *DeliveryNoteHandler {
	return &DeliveryNoteHandler{usecase: uc}
}

// CreateDeliveryNote creates a note in the pending state.
func (h *DeliveryNoteHandler) CreateDeliveryNote(c *gin.Context) {
	var payload request.CreateDeliveryNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		log.Printf("[note][handler] create rejected err=%v", err)
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
	defer cancel()

	note, err := h.usecase.Create(ctx, usecase.CreateNoteInput{
		UserID:      payload.UserID,
		ClientID:    payload.ClientID,
		ProjectID:   payload.ProjectID,
		Format:      entities.NoteFormat(payload.Format),
		Hours:       payload.ResolveHours(),
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDeliveryNote(note))
}

// GetDeliveryNotes lists active notes, optionally filtered by
// user_id/client_id/project_id query params (AND semantics).
func (h *DeliveryNoteHandler) GetDeliveryNotes(c *gin.Context) {
	h.list(c, h.usecase.List)
}

// GetArchivedDeliveryNotes lists soft-deleted notes with the same
// filters as the active listing.
func (h *DeliveryNoteHandler) GetArchivedDeliveryNotes(c *gin.Context) {
	h.list(c, h.usecase.ListArchived)
}

// GetDeliveryNoteByID returns one resolved note view.
func (h *DeliveryNoteHandler) GetDeliveryNoteByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
	defer cancel()

	view, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryNoteView(view))
}

// UpdateDeliveryNote patches a pending note.
func (h *DeliveryNoteHandler) UpdateDeliveryNote(c *gin.Context) {
	var payload request.UpdateDeliveryNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
	defer cancel()

	note, err := h.usecase.Update(ctx, c.Param("id"), patch)
	if err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryNote(note))
}

// SoftDeleteDeliveryNote archives a note. Archiving an already archived
// note acks without changing anything.
func (h *DeliveryNoteHandler) SoftDeleteDeliveryNote(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
	defer cancel()

	if _, err := h.usecase.SoftDelete(ctx, c.Param("id")); err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "DELIVERY_NOTE_SOFT_DELETED"})
}

// RestoreDeliveryNote clears the archival marker.
func (h *DeliveryNoteHandler) RestoreDeliveryNote(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
	defer cancel()

	note, err := h.usecase.Restore(ctx, c.Param("id"))
	if err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryNote(note))
}

// HardDeleteDeliveryNote destroys a signed note permanently.
func (h *DeliveryNoteHandler) HardDeleteDeliveryNote(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
	defer cancel()

	if err := h.usecase.HardDelete(ctx, c.Param("id")); err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "DELIVERY_NOTE_HARD_DELETED"})
}

func (h *DeliveryNoteHandler) list(
	c *gin.Context,
	lister func(ctx context.Context, f entities.NoteFilter) ([]entities.DeliveryNoteView, error),
) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
	defer cancel()

	filter := request.NoteFilterFromQuery(c.Query("user_id"), c.Query("client_id"), c.Query("project_id"))
	views, err := lister(ctx, filter)
	if err != nil {
		appErr := mapNoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryNoteViews(views))
}

func mapNoteError(err error) *pkg.AppError {
	var stageErr *usecase.SignStageError
	switch {
	case errors.Is(err, usecase.ErrInvalidNoteID), errors.Is(err, usecase.ErrInvalidNoteInput), errors.Is(err, usecase.ErrEmptySignature):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoteNotFound):
		return pkg.NewDomainErrorSimple("DELIVERY_NOTE_NOT_FOUND", "Delivery note not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotePending):
		return pkg.NewDomainErrorSimple("CANNOT_DELETE_PENDING_NOTE", "Cannot destroy an unsigned delivery note", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoteAlreadySigned):
		return pkg.NewDomainErrorSimple("NOTE_ALREADY_SIGNED", "Delivery note already signed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoteNotSigned):
		return pkg.NewDomainErrorSimple("NOTE_NOT_SIGNED", "Delivery note is not signed", http.StatusConflict)
	case errors.As(err, &stageErr):
		return mapSignStageError(stageErr)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("UPSTREAM_TIMEOUT", "Upstream dependency timed out, retry later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSignStageError(stageErr *usecase.SignStageError) *pkg.AppError {
	msg := "Signing failed at stage " + string(stageErr.Stage) + " for note " + stageErr.NoteID
	if stageErr.Retryable {
		return pkg.NewDomainError("SIGNING_STAGE_RETRYABLE", msg+", safe to retry finish-signing", stageErr, http.StatusServiceUnavailable)
	}
	return pkg.NewDomainError("SIGNING_STAGE_FAILED", msg, stageErr, http.StatusBadGateway)
}
