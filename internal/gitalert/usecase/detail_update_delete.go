package usecase

import (
	"context"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
	"teamboard/pkg/scope"
)

// Detail retrieves a single alert with its recipient records.
// Returns ErrAlertNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc scope.Scope, id string) (gitalert.DetailOutput, error) {
	alert, err := uc.repo.GetOneAlert(ctx, repo.GetOneAlertOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneAlert: %v", err)
		return gitalert.DetailOutput{}, err
	}
	if alert.ID == "" {
		return gitalert.DetailOutput{}, gitalert.ErrAlertNotFound
	}

	recipients, err := uc.repo.ListRecipients(ctx, alert.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListRecipients: %v", err)
		return gitalert.DetailOutput{}, err
	}

	return gitalert.DetailOutput{Alert: alert, Recipients: recipients}, nil
}

// UpdateStatus mutates the soft status field only.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc scope.Scope, input gitalert.UpdateStatusInput) (gitalert.UpdateStatusOutput, error) {
	if !input.Status.IsValid() {
		return gitalert.UpdateStatusOutput{}, gitalert.ErrInvalidStatus
	}

	alert, err := uc.repo.UpdateAlertStatus(ctx, input.ID, string(input.Status))
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus UpdateAlertStatus: %v", err)
		return gitalert.UpdateStatusOutput{}, err
	}
	if alert.ID == "" {
		return gitalert.UpdateStatusOutput{}, gitalert.ErrAlertNotFound
	}
	return gitalert.UpdateStatusOutput{Alert: alert}, nil
}

// MarkRead sets the requester's read timestamp on an alert.
func (uc *implUseCase) MarkRead(ctx context.Context, sc scope.Scope, alertID string) error {
	affected, err := uc.repo.MarkRecipientRead(ctx, alertID, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkRead MarkRecipientRead: %v", err)
		return err
	}
	if affected == 0 {
		alert, err := uc.repo.GetOneAlert(ctx, repo.GetOneAlertOptions{ID: alertID})
		if err != nil {
			return err
		}
		if alert.ID == "" {
			return gitalert.ErrAlertNotFound
		}
		return gitalert.ErrNotRecipient
	}
	return nil
}

// Delete soft-deletes an alert. Returns ErrAlertNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc scope.Scope, id string) error {
	existing, err := uc.repo.GetOneAlert(ctx, repo.GetOneAlertOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneAlert: %v", err)
		return err
	}
	if existing.ID == "" {
		return gitalert.ErrAlertNotFound
	}
	if err := uc.repo.SoftDeleteAlert(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete SoftDeleteAlert: %v", err)
		return err
	}
	return nil
}
