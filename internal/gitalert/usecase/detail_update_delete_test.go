package usecase

import (
	"context"
	"errors"
	"testing"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
	"teamboard/pkg/scope"
)

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	sc := scope.Scope{UserID: "user-1"}

	t.Run("Invalid Status Rejected", func(t *testing.T) {
		uc := New(&mockAlertRepo{}, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		_, err := uc.UpdateStatus(ctx, sc, gitalert.UpdateStatusInput{ID: "a1", Status: "WONTFIX"})
		if !errors.Is(err, gitalert.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("Missing Alert", func(t *testing.T) {
		alerts := &mockAlertRepo{
			updateAlertStatusFunc: func(id, status string) (gitalert.Alert, error) {
				return gitalert.Alert{}, nil // not found
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		_, err := uc.UpdateStatus(ctx, sc, gitalert.UpdateStatusInput{ID: "missing", Status: "RESOLVED"})
		if !errors.Is(err, gitalert.ErrAlertNotFound) {
			t.Errorf("expected ErrAlertNotFound, got %v", err)
		}
	})

	t.Run("Status Forwarded", func(t *testing.T) {
		var gotStatus string
		alerts := &mockAlertRepo{
			updateAlertStatusFunc: func(id, status string) (gitalert.Alert, error) {
				gotStatus = status
				return gitalert.Alert{ID: id, Status: "ACKNOWLEDGED"}, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		out, err := uc.UpdateStatus(ctx, sc, gitalert.UpdateStatusInput{ID: "a1", Status: "ACKNOWLEDGED"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotStatus != "ACKNOWLEDGED" || out.Alert.Status != "ACKNOWLEDGED" {
			t.Errorf("status not forwarded, got %q", gotStatus)
		}
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Recipient Marked", func(t *testing.T) {
		var gotAlert, gotUser string
		alerts := &mockAlertRepo{
			markRecipientReadFunc: func(alertID, userID string) (int, error) {
				gotAlert, gotUser = alertID, userID
				return 1, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		if err := uc.MarkRead(ctx, scope.Scope{UserID: "u1"}, "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAlert != "a1" || gotUser != "u1" {
			t.Errorf("wrong pair marked: %s/%s", gotAlert, gotUser)
		}
	})

	t.Run("Missing Alert", func(t *testing.T) {
		alerts := &mockAlertRepo{
			markRecipientReadFunc: func(alertID, userID string) (int, error) {
				return 0, nil
			},
			getOneAlertFunc: func(opt repo.GetOneAlertOptions) (gitalert.Alert, error) {
				return gitalert.Alert{}, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		err := uc.MarkRead(ctx, scope.Scope{UserID: "u1"}, "missing")
		if !errors.Is(err, gitalert.ErrAlertNotFound) {
			t.Errorf("expected ErrAlertNotFound, got %v", err)
		}
	})

	t.Run("Not A Recipient", func(t *testing.T) {
		alerts := &mockAlertRepo{
			markRecipientReadFunc: func(alertID, userID string) (int, error) {
				return 0, nil
			},
			getOneAlertFunc: func(opt repo.GetOneAlertOptions) (gitalert.Alert, error) {
				return gitalert.Alert{ID: "a1"}, nil // alert exists
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		err := uc.MarkRead(ctx, scope.Scope{UserID: "outsider"}, "a1")
		if !errors.Is(err, gitalert.ErrNotRecipient) {
			t.Errorf("expected ErrNotRecipient, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := scope.Scope{UserID: "u1"}

	t.Run("Missing Alert", func(t *testing.T) {
		uc := New(&mockAlertRepo{}, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		err := uc.Delete(ctx, sc, "missing")
		if !errors.Is(err, gitalert.ErrAlertNotFound) {
			t.Errorf("expected ErrAlertNotFound, got %v", err)
		}
	})

	t.Run("Soft Delete Invoked", func(t *testing.T) {
		deleted := ""
		alerts := &mockAlertRepo{
			getOneAlertFunc: func(opt repo.GetOneAlertOptions) (gitalert.Alert, error) {
				return gitalert.Alert{ID: opt.ID}, nil
			},
			softDeleteAlertFunc: func(id string) error {
				deleted = id
				return nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		if err := uc.Delete(ctx, sc, "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "a1" {
			t.Errorf("expected soft delete of a1, got %q", deleted)
		}
	})
}
