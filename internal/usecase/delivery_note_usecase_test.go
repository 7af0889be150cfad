package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"albaranes/internal/domain/entities"
	mock_interfaces "albaranes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeliveryNoteUseCase_Create(t *testing.T) {
	t.Run("missing references", func(t *testing.T) {
		uc := NewDeliveryNoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateNoteInput{UserID: "  ", ClientID: "c1", ProjectID: "p1", Format: entities.NoteFormatHours})
		if !errors.Is(err, ErrInvalidNoteInput) {
			t.Fatalf("expected ErrInvalidNoteInput, got %v", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		uc := NewDeliveryNoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateNoteInput{UserID: "u1", ClientID: "c1", ProjectID: "p1", Format: "days"})
		if !errors.Is(err, ErrInvalidNoteInput) {
			t.Fatalf("expected ErrInvalidNoteInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DeliveryNote{})).DoAndReturn(
			func(_ context.Context, n entities.DeliveryNote) (entities.DeliveryNote, error) {
				if n.ID == "" || n.UserID != "u1" || n.ClientID != "c1" || n.ProjectID != "p1" {
					t.Fatalf("unexpected note: %+v", n)
				}
				if !n.Pending || n.Sign != "" || n.PDFURL != "" {
					t.Fatalf("expected pending note without sign/pdf, got %+v", n)
				}
				if n.Format != entities.NoteFormatHours || n.Hours != 8 {
					t.Fatalf("unexpected format/hours: %+v", n)
				}
				if n.CreatedAt.IsZero() || n.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return n, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateNoteInput{
			UserID: " u1 ", ClientID: "c1", ProjectID: "p1",
			Format: entities.NoteFormatHours, Hours: 8,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestDeliveryNoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDeliveryNoteUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidNoteID) {
			t.Fatalf("expected ErrInvalidNoteID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNote{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNote{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrNoteNotFound) {
			t.Fatalf("expected ErrNoteNotFound, got %v", err)
		}
	})

	t.Run("success with resolved parties", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		directory := mock_interfaces.NewMockIPartyDirectory(ctrl)
		uc := NewDeliveryNoteUseCase(repo, directory)

		note := entities.DeliveryNote{ID: "id-1", UserID: "u1", ClientID: "c1", ProjectID: "p1", Pending: true}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(note, nil)
		directory.EXPECT().GetUser(gomock.Any(), "u1").Return(entities.UserInfo{Name: "Ana", Surnames: "García", Email: "ana@acme.es"}, nil)
		directory.EXPECT().GetClient(gomock.Any(), "c1").Return(entities.ClientInfo{Name: "ACME", CIF: "B123"}, nil)
		directory.EXPECT().GetProject(gomock.Any(), "p1").Return(entities.ProjectInfo{Name: "Obra", ProjectCode: "OB-1"}, nil)

		view, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ID != "id-1" || view.User.Name != "Ana" || view.Client.CIF != "B123" || view.Project.ProjectCode != "OB-1" {
			t.Fatalf("unexpected view: %+v", view)
		}
	})
}

func TestDeliveryNoteUseCase_Update(t *testing.T) {
	desc := "updated"

	t.Run("invalid id", func(t *testing.T) {
		uc := NewDeliveryNoteUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "", entities.NotePatch{Description: &desc})
		if !errors.Is(err, ErrInvalidNoteID) {
			t.Fatalf("expected ErrInvalidNoteID, got %v", err)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		uc := NewDeliveryNoteUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "id-1", entities.NotePatch{})
		if !errors.Is(err, ErrInvalidNoteInput) {
			t.Fatalf("expected ErrInvalidNoteInput, got %v", err)
		}
	})

	t.Run("refused and absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(entities.DeliveryNote{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNote{}, nil)

		_, err := uc.Update(context.Background(), "id-1", entities.NotePatch{Description: &desc})
		if !errors.Is(err, ErrNoteNotFound) {
			t.Fatalf("expected ErrNoteNotFound, got %v", err)
		}
	})

	t.Run("refused because signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(entities.DeliveryNote{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNote{ID: "id-1", Pending: false, Sign: "https://blobs/s.png"}, nil)

		_, err := uc.Update(context.Background(), "id-1", entities.NotePatch{Description: &desc})
		if !errors.Is(err, ErrNoteAlreadySigned) {
			t.Fatalf("expected ErrNoteAlreadySigned, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		expected := entities.DeliveryNote{ID: "id-1", Description: desc, Pending: true}
		repo.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(expected, nil)

		res, err := uc.Update(context.Background(), " id-1 ", entities.NotePatch{Description: &desc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Description != desc {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestDeliveryNoteUseCase_Archival(t *testing.T) {
	t.Run("soft delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().SoftDelete(gomock.Any(), "id-1").Return(entities.DeliveryNote{}, nil)

		_, err := uc.SoftDelete(context.Background(), "id-1")
		if !errors.Is(err, ErrNoteNotFound) {
			t.Fatalf("expected ErrNoteNotFound, got %v", err)
		}
	})

	t.Run("soft delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		now := time.Now().UTC()
		archived := entities.DeliveryNote{ID: "id-1", Pending: true, DeletedAt: &now}
		repo.EXPECT().SoftDelete(gomock.Any(), "id-1").Return(archived, nil)

		res, err := uc.SoftDelete(context.Background(), "id-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Archived() {
			t.Fatalf("expected archived note, got %+v", res)
		}
	})

	t.Run("restore keeps fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		restored := entities.DeliveryNote{ID: "id-1", Format: entities.NoteFormatHours, Hours: 8, Description: "obra", Pending: true}
		repo.EXPECT().Restore(gomock.Any(), "id-1").Return(restored, nil)

		res, err := uc.Restore(context.Background(), "id-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Archived() || res.Hours != 8 || res.Description != "obra" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("restore not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().Restore(gomock.Any(), "id-1").Return(entities.DeliveryNote{}, nil)

		_, err := uc.Restore(context.Background(), "id-1")
		if !errors.Is(err, ErrNoteNotFound) {
			t.Fatalf("expected ErrNoteNotFound, got %v", err)
		}
	})

	t.Run("list archived resolves views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		directory := mock_interfaces.NewMockIPartyDirectory(ctrl)
		uc := NewDeliveryNoteUseCase(repo, directory)

		now := time.Now().UTC()
		notes := []entities.DeliveryNote{{ID: "id-1", UserID: "u1", ClientID: "c1", ProjectID: "p1", DeletedAt: &now}}
		repo.EXPECT().ListDeleted(gomock.Any(), entities.NoteFilter{UserID: "u1"}).Return(notes, nil)
		directory.EXPECT().GetUser(gomock.Any(), "u1").Return(entities.UserInfo{Name: "Ana"}, nil)
		directory.EXPECT().GetClient(gomock.Any(), "c1").Return(entities.ClientInfo{}, nil)
		directory.EXPECT().GetProject(gomock.Any(), "p1").Return(entities.ProjectInfo{}, nil)

		views, err := uc.ListArchived(context.Background(), entities.NoteFilter{UserID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].User.Name != "Ana" {
			t.Fatalf("unexpected views: %+v", views)
		}
	})
}

func TestDeliveryNoteUseCase_HardDelete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDeliveryNoteUseCase(nil, nil)
		err := uc.HardDelete(context.Background(), " ")
		if !errors.Is(err, ErrInvalidNoteID) {
			t.Fatalf("expected ErrInvalidNoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNote{}, nil)

		err := uc.HardDelete(context.Background(), "id-1")
		if !errors.Is(err, ErrNoteNotFound) {
			t.Fatalf("expected ErrNoteNotFound, got %v", err)
		}
	})

	t.Run("pending note is never destroyed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNote{ID: "id-1", Pending: true}, nil)

		err := uc.HardDelete(context.Background(), "id-1")
		if !errors.Is(err, ErrNotePending) {
			t.Fatalf("expected ErrNotePending, got %v", err)
		}
	})

	t.Run("conditional delete lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		signed := entities.DeliveryNote{ID: "id-1", Pending: false, Sign: "https://blobs/s.png"}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(signed, nil),
			repo.EXPECT().HardDelete(gomock.Any(), "id-1").Return(false, nil),
			repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DeliveryNote{}, nil),
		)

		err := uc.HardDelete(context.Background(), "id-1")
		if !errors.Is(err, ErrNoteNotFound) {
			t.Fatalf("expected ErrNoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryNoteRepository(ctrl)
		uc := NewDeliveryNoteUseCase(repo, nil)
		signed := entities.DeliveryNote{ID: "id-1", Pending: false, Sign: "https://blobs/s.png", PDFURL: "https://blobs/a.pdf"}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(signed, nil)
		repo.EXPECT().HardDelete(gomock.Any(), "id-1").Return(true, nil)

		if err := uc.HardDelete(context.Background(), " id-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
