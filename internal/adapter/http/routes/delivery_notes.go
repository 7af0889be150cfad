package routes

import (
	"albaranes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeliveryNotes = "/delivery-notes"
)

func addDeliveryNoteRoutes(rg *gin.RouterGroup, noteHandler *handlers.DeliveryNoteHandler, signingHandler *handlers.SigningHandler) {
	notes := rg.Group(PathDeliveryNotes)
	{
		notes.POST("", noteHandler.CreateDeliveryNote)
		notes.GET("", noteHandler.GetDeliveryNotes)
		notes.GET("/archived", noteHandler.GetArchivedDeliveryNotes)
		notes.GET("/:id", noteHandler.GetDeliveryNoteByID)
		notes.PATCH("/:id", noteHandler.UpdateDeliveryNote)
		notes.DELETE("/:id", noteHandler.SoftDeleteDeliveryNote)
		notes.PATCH("/:id/restore", noteHandler.RestoreDeliveryNote)
		notes.DELETE("/:id/hard", noteHandler.HardDeleteDeliveryNote)

		notes.GET("/:id/pdf", signingHandler.GetDeliveryNotePDF)
		notes.POST("/:id/sign", signingHandler.UploadSignature)
		notes.POST("/:id/sign/finish", signingHandler.FinishSigning)
	}
}
