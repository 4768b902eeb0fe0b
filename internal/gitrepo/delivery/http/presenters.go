package http

import (
	"fmt"
	"time"

	"teamboard/internal/gitrepo"
	"teamboard/internal/model"
	"teamboard/pkg/response"
)

// --- Request DTOs ---

type linkReq struct {
	Name          string `json:"name"           binding:"required,min=1,max=255"`
	RemoteURL     string `json:"remote_url"     binding:"required,url"`
	Provider      string `json:"provider"       binding:"required"`
	ExternalID    int64  `json:"external_id"`
	AccessToken   string `json:"access_token"`
	WebhookSecret string `json:"webhook_secret"`
	ProjectID     string `json:"project_id"     binding:"required"`
	SyncInterval  int    `json:"sync_interval_seconds"`
}

func (r linkReq) validate() error {
	if !model.Provider(r.Provider).IsValid() {
		return fmt.Errorf("invalid provider %q", r.Provider)
	}
	if r.SyncInterval < 0 {
		return fmt.Errorf("sync_interval_seconds must not be negative")
	}
	return nil
}

func (r linkReq) toInput() gitrepo.LinkInput {
	return gitrepo.LinkInput{
		Name:          r.Name,
		RemoteURL:     r.RemoteURL,
		Provider:      model.Provider(r.Provider),
		ExternalID:    r.ExternalID,
		AccessToken:   r.AccessToken,
		WebhookSecret: r.WebhookSecret,
		ProjectID:     r.ProjectID,
		SyncInterval:  time.Duration(r.SyncInterval) * time.Second,
	}
}

type listReq struct {
	ProjectID string `form:"project_id"`
	Provider  string `form:"provider"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

func (r listReq) validate() error {
	if r.Provider != "" && !model.Provider(r.Provider).IsValid() {
		return fmt.Errorf("invalid provider %q", r.Provider)
	}
	return nil
}

func (r listReq) toInput() gitrepo.ListInput {
	return gitrepo.ListInput{
		ProjectID: r.ProjectID,
		Provider:  model.Provider(r.Provider),
		Page:      r.Page,
		Limit:     r.Limit,
	}
}

type updateSyncReq struct {
	ID            string  `json:"-"` // populated from URI param
	AccessToken   *string `json:"access_token"`
	WebhookSecret *string `json:"webhook_secret"`
	SyncInterval  *int    `json:"sync_interval_seconds"`
	Enabled       *bool   `json:"enabled"`
}

func (r updateSyncReq) validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.SyncInterval != nil && *r.SyncInterval <= 0 {
		return fmt.Errorf("sync_interval_seconds must be positive")
	}
	return nil
}

func (r updateSyncReq) toInput() gitrepo.UpdateSyncInput {
	input := gitrepo.UpdateSyncInput{
		ID:            r.ID,
		AccessToken:   r.AccessToken,
		WebhookSecret: r.WebhookSecret,
		Enabled:       r.Enabled,
	}
	if r.SyncInterval != nil {
		interval := time.Duration(*r.SyncInterval) * time.Second
		input.SyncInterval = &interval
	}
	return input
}

// --- Response DTOs ---

// repositoryResp never echoes credentials back to the client.
type repositoryResp struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	RemoteURL     string     `json:"remote_url"`
	Provider      string     `json:"provider"`
	ExternalID    int64      `json:"external_id,omitempty"`
	ProjectID     string     `json:"project_id"`
	SyncInterval  int        `json:"sync_interval_seconds"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
	DefaultBranch string     `json:"default_branch,omitempty"`
	Enabled       bool       `json:"enabled"`
	HasToken      bool       `json:"has_token"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func newRepositoryResp(rep gitrepo.Repository) repositoryResp {
	return repositoryResp{
		ID:            rep.ID,
		Name:          rep.Name,
		RemoteURL:     rep.RemoteURL,
		Provider:      string(rep.Provider),
		ExternalID:    rep.ExternalID,
		ProjectID:     rep.ProjectID,
		SyncInterval:  int(rep.SyncInterval / time.Second),
		LastSyncedAt:  rep.LastSyncedAt,
		DefaultBranch: rep.DefaultBranch,
		Enabled:       rep.Enabled,
		HasToken:      rep.AccessToken != "",
		CreatedAt:     rep.CreatedAt,
		UpdatedAt:     rep.UpdatedAt,
	}
}

type linkResp struct {
	Repository repositoryResp `json:"repository"`
}

func (h *handler) newLinkResp(out gitrepo.LinkOutput) linkResp {
	return linkResp{Repository: newRepositoryResp(out.Repository)}
}

type listResp struct {
	Repositories []repositoryResp    `json:"repositories"`
	Pagination   response.Pagination `json:"pagination"`
}

func (h *handler) newListResp(out gitrepo.ListOutput) listResp {
	repos := make([]repositoryResp, len(out.Repositories))
	for i, rep := range out.Repositories {
		repos[i] = newRepositoryResp(rep)
	}
	return listResp{
		Repositories: repos,
		Pagination:   response.NewPagination(out.Page, out.Limit, out.Total),
	}
}

type detailResp struct {
	Repository repositoryResp `json:"repository"`
}

func (h *handler) newDetailResp(out gitrepo.DetailOutput) detailResp {
	return detailResp{Repository: newRepositoryResp(out.Repository)}
}

type updateSyncResp struct {
	Repository repositoryResp `json:"repository"`
}

func (h *handler) newUpdateSyncResp(out gitrepo.UpdateSyncOutput) updateSyncResp {
	return updateSyncResp{Repository: newRepositoryResp(out.Repository)}
}
