package usecase

import (
	"context"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
	"teamboard/pkg/scope"
)

// List returns a filtered, paginated page of alerts. Page is 1-indexed.
func (uc *implUseCase) List(ctx context.Context, sc scope.Scope, input gitalert.ListInput) (gitalert.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = gitalert.DefaultPageLimit
	}
	if limit > gitalert.MaxPageLimit {
		limit = gitalert.MaxPageLimit
	}

	alerts, total, err := uc.repo.ListAlerts(ctx, repo.ListAlertsOptions{
		Filter: filterFrom(
			input.Search, input.Type, input.Status, input.Priority, input.Branch,
			input.RepositoryID, input.Actionable, input.TriggeredBy, input.From, input.To,
		),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAlerts: %v", err)
		return gitalert.ListOutput{}, err
	}

	return gitalert.ListOutput{
		Alerts: alerts,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

// Summary returns aggregate counts over the same filter scope as List.
// Unread is scoped to the requesting user's recipient read state.
func (uc *implUseCase) Summary(ctx context.Context, sc scope.Scope, input gitalert.SummaryInput) (gitalert.Summary, error) {
	summary, err := uc.repo.SummarizeAlerts(ctx, repo.SummarizeAlertsOptions{
		Filter: filterFrom(
			input.Search, input.Type, input.Status, input.Priority, input.Branch,
			input.RepositoryID, input.Actionable, input.TriggeredBy, input.From, input.To,
		),
		UnreadUserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary SummarizeAlerts: %v", err)
		return gitalert.Summary{}, err
	}
	return summary, nil
}
