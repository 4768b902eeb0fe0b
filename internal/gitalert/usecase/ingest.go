package usecase

import (
	"context"

	"github.com/google/uuid"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
	gitrepoRepo "teamboard/internal/gitrepo/repository"
	"teamboard/internal/model"
	userRepo "teamboard/internal/user/repository"
)

// Ingest persists a normalized event as an alert and fans it out to the
// project's recipient set. Orphan events (untracked repository) are rejected;
// duplicate deliveries are absorbed.
func (uc *implUseCase) Ingest(ctx context.Context, input gitalert.IngestInput) (gitalert.IngestOutput, error) {
	event := input.Event

	if !event.Type.IsValid() {
		return gitalert.IngestOutput{}, gitalert.ErrInvalidEventType
	}

	// 1. Resolve the owning repository by remote identity scoped to provider.
	// Webhooks never create repository records.
	rep, err := uc.gitrepoRepo.GetOneRepository(ctx, gitrepoRepo.GetOneRepositoryOptions{
		Provider:   string(event.Provider),
		RemoteURL:  event.RepoRemoteURL,
		ExternalID: event.RepoExternalID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest GetOneRepository: %v", err)
		return gitalert.IngestOutput{}, err
	}
	if rep.ID == "" {
		uc.l.Warnf(ctx, "uc.Ingest: orphan event %s from %s (%s), discarding",
			event.Type, event.RepoFullName, event.Provider)
		return gitalert.IngestOutput{}, gitalert.ErrOrphanEvent
	}

	// 2. Dedup fast path. The unique (repository_id, dedup_key) index stays
	// authoritative for concurrent deliveries that race past the cache.
	dedupKey := dedupKeyFor(event, rep.ID)
	if _, seen := uc.dedupCache.Get(dedupKey); seen {
		existing, err := uc.repo.GetOneAlert(ctx, repo.GetOneAlertOptions{DedupKey: dedupKey})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Ingest GetOneAlert: %v", err)
			return gitalert.IngestOutput{}, err
		}
		uc.l.Infof(ctx, "uc.Ingest: duplicate delivery %s for repo %s, absorbed", dedupKey, rep.ID)
		return gitalert.IngestOutput{Alert: existing, Created: false}, nil
	}

	// 3. Resolve the triggering actor. Alerts are never blocked on this.
	var triggeredBy *string
	if event.ActorUsername != "" {
		opt := userRepo.GetOneUserOptions{}
		switch event.Provider {
		case model.ProviderGitHub:
			opt.GitHubUsername = event.ActorUsername
		case model.ProviderGitLab:
			opt.GitLabUsername = event.ActorUsername
		}
		actor, err := uc.userRepo.GetOneUser(ctx, opt)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Ingest GetOneUser %q: %v", event.ActorUsername, err)
		} else if actor.ID != "" {
			triggeredBy = &actor.ID
		}
	}

	priority := event.Priority
	if !priority.IsValid() {
		priority = model.AlertPriorityMedium
	}

	// 4. Persist the alert row.
	alert, err := uc.repo.CreateAlert(ctx, repo.CreateAlertOptions{
		ID:             uuid.NewString(),
		Title:          event.Title,
		Description:    event.Description,
		Type:           string(event.Type),
		Priority:       string(priority),
		Tags:           tagsFor(event),
		Branch:         event.Branch,
		Commit:         event.Commit,
		PRNumber:       event.PRNumber,
		IssueNumber:    event.IssueNumber,
		ExternalURL:    event.ExternalURL,
		IsActionable:   event.IsActionable,
		RequiredAction: event.RequiredAction,
		EventAt:        eventTime(event),
		RepositoryID:   rep.ID,
		ProjectID:      rep.ProjectID,
		TriggeredBy:    triggeredBy,
		DedupKey:       dedupKey,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest CreateAlert: %v", err)
		return gitalert.IngestOutput{}, err
	}
	uc.dedupCache.Add(dedupKey, struct{}{})

	if alert.ID == "" {
		// Unique-index conflict: another delivery won the race.
		existing, err := uc.repo.GetOneAlert(ctx, repo.GetOneAlertOptions{DedupKey: dedupKey})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Ingest GetOneAlert after conflict: %v", err)
			return gitalert.IngestOutput{}, err
		}
		return gitalert.IngestOutput{Alert: existing, Created: false}, nil
	}

	// 5. Fan-out. The alert is already committed: recipient failure degrades
	// to an alert without recipients, it never rolls the alert back.
	recipients, err := uc.policy.Resolve(ctx, rep.ProjectID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Ingest recipient policy for project %s: %v", rep.ProjectID, err)
		return gitalert.IngestOutput{Alert: alert, Created: true}, nil
	}

	created, err := uc.repo.CreateRecipients(ctx, alert.ID, recipients)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Ingest CreateRecipients for alert %s: %v", alert.ID, err)
		return gitalert.IngestOutput{Alert: alert, Created: true}, nil
	}

	uc.l.Infof(ctx, "uc.Ingest: alert %s (%s) created with %d recipients", alert.ID, alert.Type, created)
	return gitalert.IngestOutput{Alert: alert, Created: true, Recipients: created}, nil
}
