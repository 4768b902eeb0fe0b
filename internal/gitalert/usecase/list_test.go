package usecase

import (
	"context"
	"testing"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
	"teamboard/pkg/scope"
)

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := scope.Scope{UserID: "user-1"}

	t.Run("Defaults Applied", func(t *testing.T) {
		var gotLimit, gotOffset int
		alerts := &mockAlertRepo{
			listAlertsFunc: func(opt repo.ListAlertsOptions) ([]gitalert.Alert, int, error) {
				gotLimit, gotOffset = opt.Limit, opt.Offset
				return nil, 0, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		out, err := uc.List(ctx, sc, gitalert.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotLimit != gitalert.DefaultPageLimit || gotOffset != 0 {
			t.Errorf("expected limit %d offset 0, got %d/%d", gitalert.DefaultPageLimit, gotLimit, gotOffset)
		}
		if out.Page != 1 {
			t.Errorf("expected page normalized to 1, got %d", out.Page)
		}
	})

	t.Run("Limit Clamped To Max", func(t *testing.T) {
		var gotLimit int
		alerts := &mockAlertRepo{
			listAlertsFunc: func(opt repo.ListAlertsOptions) ([]gitalert.Alert, int, error) {
				gotLimit = opt.Limit
				return nil, 0, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		if _, err := uc.List(ctx, sc, gitalert.ListInput{Limit: 5000}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotLimit != gitalert.MaxPageLimit {
			t.Errorf("expected limit clamped to %d, got %d", gitalert.MaxPageLimit, gotLimit)
		}
	})

	t.Run("Page Math", func(t *testing.T) {
		var gotOffset int
		alerts := &mockAlertRepo{
			listAlertsFunc: func(opt repo.ListAlertsOptions) ([]gitalert.Alert, int, error) {
				gotOffset = opt.Offset
				return make([]gitalert.Alert, 5), 25, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		out, err := uc.List(ctx, sc, gitalert.ListInput{Page: 3, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOffset != 20 {
			t.Errorf("expected offset 20 for page 3 limit 10, got %d", gotOffset)
		}
		if out.Total != 25 || len(out.Alerts) != 5 {
			t.Errorf("expected total 25 with 5 items on last page, got %d/%d", out.Total, len(out.Alerts))
		}
	})

	t.Run("Filters Forwarded", func(t *testing.T) {
		var gotFilter repo.AlertFilter
		alerts := &mockAlertRepo{
			listAlertsFunc: func(opt repo.ListAlertsOptions) ([]gitalert.Alert, int, error) {
				gotFilter = opt.Filter
				return nil, 0, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		actionable := true
		_, err := uc.List(ctx, sc, gitalert.ListInput{
			Search:     "deploy",
			Type:       "PUSH",
			Status:     "NEW",
			Branch:     "main",
			Actionable: &actionable,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotFilter.Search != "deploy" || gotFilter.Type != "PUSH" ||
			gotFilter.Status != "NEW" || gotFilter.Branch != "main" ||
			gotFilter.Actionable == nil || !*gotFilter.Actionable {
			t.Errorf("filters not forwarded: %+v", gotFilter)
		}
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Unread Scoped To Requester", func(t *testing.T) {
		var gotUserID string
		alerts := &mockAlertRepo{
			summarizeAlertsFunc: func(opt repo.SummarizeAlertsOptions) (gitalert.Summary, error) {
				gotUserID = opt.UnreadUserID
				return gitalert.Summary{Total: 7, Unread: 2}, nil
			},
		}
		uc := New(alerts, &mockGitrepoRepo{}, &mockUserRepo{}, &mockPolicy{}, Config{}, &mockLogger{})
		out, err := uc.Summary(ctx, scope.Scope{UserID: "user-42"}, gitalert.SummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUserID != "user-42" {
			t.Errorf("expected unread scoped to user-42, got %q", gotUserID)
		}
		if out.Total != 7 || out.Unread != 2 {
			t.Errorf("summary not passed through: %+v", out)
		}
	})
}
