package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"albaranes/internal/adapter/http/handlers/mocks"
	"albaranes/internal/domain/entities"
	"albaranes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func noteRouter(h *DeliveryNoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/delivery-notes", h.CreateDeliveryNote)
	r.GET("/delivery-notes", h.GetDeliveryNotes)
	r.GET("/delivery-notes/archived", h.GetArchivedDeliveryNotes)
	r.GET("/delivery-notes/:id", h.GetDeliveryNoteByID)
	r.PATCH("/delivery-notes/:id", h.UpdateDeliveryNote)
	r.DELETE("/delivery-notes/:id", h.SoftDeleteDeliveryNote)
	r.PATCH("/delivery-notes/:id/restore", h.RestoreDeliveryNote)
	r.DELETE("/delivery-notes/:id/hard", h.HardDeleteDeliveryNote)
	return r
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return body.Code
}

func TestCreateDeliveryNote(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		w := performRequest(r, http.MethodPost, "/delivery-notes", []byte("{"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("hours format without hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		payload := []byte(`{"user_id":"u1","client_id":"c1","project_id":"p1","format":"hours"}`)
		w := performRequest(r, http.MethodPost, "/delivery-notes", payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INVALID_DELIVERY_NOTE_INPUT" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		created := entities.DeliveryNote{
			ID: "id-1", UserID: "u1", ClientID: "c1", ProjectID: "p1",
			Format: entities.NoteFormatHours, Hours: 8, Pending: true,
			CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		}
		uc.EXPECT().Create(gomock.Any(), usecase.CreateNoteInput{
			UserID: "u1", ClientID: "c1", ProjectID: "p1",
			Format: entities.NoteFormatHours, Hours: 8,
		}).Return(created, nil)

		payload := []byte(`{"user_id":"u1","client_id":"c1","project_id":"p1","format":"hours","hours":8}`)
		w := performRequest(r, http.MethodPost, "/delivery-notes", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var body struct {
			ID      string `json:"id"`
			Pending bool   `json:"pending"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "id-1" || !body.Pending {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestGetDeliveryNoteByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))
		uc.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNoteView{}, usecase.ErrNoteNotFound)

		w := performRequest(r, http.MethodGet, "/delivery-notes/id-1", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "DELIVERY_NOTE_NOT_FOUND" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("success with parties", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		view := entities.DeliveryNoteView{
			DeliveryNote: entities.DeliveryNote{ID: "id-1", UserID: "u1", ClientID: "c1", ProjectID: "p1", Pending: true},
			User:         entities.UserInfo{Name: "Ana", Surnames: "García"},
			Client:       entities.ClientInfo{Name: "ACME", CIF: "B123"},
			Project:      entities.ProjectInfo{Name: "Obra", ProjectCode: "OB-1"},
		}
		uc.EXPECT().GetByID(gomock.Any(), "id-1").Return(view, nil)

		w := performRequest(r, http.MethodGet, "/delivery-notes/id-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			ID     string `json:"id"`
			Client struct {
				CIF string `json:"cif"`
			} `json:"client"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "id-1" || body.Client.CIF != "B123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestGetDeliveryNotes(t *testing.T) {
	t.Run("filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		uc.EXPECT().List(gomock.Any(), entities.NoteFilter{UserID: "u1", ClientID: "c1"}).Return([]entities.DeliveryNoteView{}, nil)

		w := performRequest(r, http.MethodGet, "/delivery-notes?user_id=u1&client_id=c1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %s", w.Body.String())
		}
	})

	t.Run("archived listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		now := time.Now().UTC()
		views := []entities.DeliveryNoteView{{
			DeliveryNote: entities.DeliveryNote{ID: "id-1", Pending: true, DeletedAt: &now},
		}}
		uc.EXPECT().ListArchived(gomock.Any(), entities.NoteFilter{}).Return(views, nil)

		w := performRequest(r, http.MethodGet, "/delivery-notes/archived", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestUpdateDeliveryNote(t *testing.T) {
	t.Run("signed note conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))
		uc.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(entities.DeliveryNote{}, usecase.ErrNoteAlreadySigned)

		w := performRequest(r, http.MethodPatch, "/delivery-notes/id-1", []byte(`{"description":"nuevo"}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "NOTE_ALREADY_SIGNED" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		w := performRequest(r, http.MethodPatch, "/delivery-notes/id-1", []byte(`{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		updated := entities.DeliveryNote{ID: "id-1", Description: "nuevo", Pending: true}
		uc.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(updated, nil)

		w := performRequest(r, http.MethodPatch, "/delivery-notes/id-1", []byte(`{"description":"nuevo"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestArchivalEndpoints(t *testing.T) {
	t.Run("soft delete ack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().SoftDelete(gomock.Any(), "id-1").Return(entities.DeliveryNote{ID: "id-1", DeletedAt: &now}, nil)

		w := performRequest(r, http.MethodDelete, "/delivery-notes/id-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Message != "DELIVERY_NOTE_SOFT_DELETED" {
			t.Fatalf("unexpected message: %s", body.Message)
		}
	})

	t.Run("restore returns the note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))

		restored := entities.DeliveryNote{ID: "id-1", Pending: true}
		uc.EXPECT().Restore(gomock.Any(), "id-1").Return(restored, nil)

		w := performRequest(r, http.MethodPatch, "/delivery-notes/id-1/restore", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestHardDeleteDeliveryNote(t *testing.T) {
	t.Run("pending note conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))
		uc.EXPECT().HardDelete(gomock.Any(), "id-1").Return(usecase.ErrNotePending)

		w := performRequest(r, http.MethodDelete, "/delivery-notes/id-1/hard", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "CANNOT_DELETE_PENDING_NOTE" {
			t.Fatalf("unexpected error code: %s", code)
		}
	})

	t.Run("upstream timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))
		uc.EXPECT().HardDelete(gomock.Any(), "id-1").Return(context.DeadlineExceeded)

		w := performRequest(r, http.MethodDelete, "/delivery-notes/id-1/hard", nil)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unexpected error is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))
		uc.EXPECT().HardDelete(gomock.Any(), "id-1").Return(errors.New("db"))

		w := performRequest(r, http.MethodDelete, "/delivery-notes/id-1/hard", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryNoteUseCase(ctrl)
		r := noteRouter(NewDeliveryNoteHandler(uc))
		uc.EXPECT().HardDelete(gomock.Any(), "id-1").Return(nil)

		w := performRequest(r, http.MethodDelete, "/delivery-notes/id-1/hard", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
