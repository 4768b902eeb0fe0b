package http

import (
	"fmt"
	"time"

	"teamboard/internal/gitalert"
	"teamboard/internal/model"
	"teamboard/pkg/response"
)

// --- Request DTOs ---

// filterReq is the filter block shared by the list and summary surfaces.
type filterReq struct {
	Search       string `form:"search"`
	Type         string `form:"type"`
	Status       string `form:"status"`
	Priority     string `form:"priority"`
	Branch       string `form:"branch"`
	RepositoryID string `form:"repository_id"`
	Actionable   *bool  `form:"actionable"`
	TriggeredBy  string `form:"triggered_by"`
	From         string `form:"from"`
	To           string `form:"to"`
}

func (r filterReq) validate() error {
	if r.Type != "" && !model.AlertType(r.Type).IsValid() {
		return fmt.Errorf("invalid type %q", r.Type)
	}
	if r.Status != "" && !model.AlertStatus(r.Status).IsValid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	if r.Priority != "" && !model.AlertPriority(r.Priority).IsValid() {
		return fmt.Errorf("invalid priority %q", r.Priority)
	}
	if _, err := parseTimePtr(r.From); err != nil {
		return fmt.Errorf("invalid from: %w", err)
	}
	if _, err := parseTimePtr(r.To); err != nil {
		return fmt.Errorf("invalid to: %w", err)
	}
	return nil
}

// parseTimePtr parses an optional RFC3339 timestamp. Empty input is nil.
func parseTimePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type listReq struct {
	filterReq
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r listReq) validate() error { return r.filterReq.validate() }

func (r listReq) toInput() gitalert.ListInput {
	from, _ := parseTimePtr(r.From)
	to, _ := parseTimePtr(r.To)
	return gitalert.ListInput{
		Search:       r.Search,
		Type:         model.AlertType(r.Type),
		Status:       model.AlertStatus(r.Status),
		Priority:     model.AlertPriority(r.Priority),
		Branch:       r.Branch,
		RepositoryID: r.RepositoryID,
		Actionable:   r.Actionable,
		TriggeredBy:  r.TriggeredBy,
		From:         from,
		To:           to,
		Page:         r.Page,
		Limit:        r.Limit,
	}
}

type summaryReq struct {
	filterReq
}

func (r summaryReq) validate() error { return r.filterReq.validate() }

func (r summaryReq) toInput() gitalert.SummaryInput {
	from, _ := parseTimePtr(r.From)
	to, _ := parseTimePtr(r.To)
	return gitalert.SummaryInput{
		Search:       r.Search,
		Type:         model.AlertType(r.Type),
		Status:       model.AlertStatus(r.Status),
		Priority:     model.AlertPriority(r.Priority),
		Branch:       r.Branch,
		RepositoryID: r.RepositoryID,
		Actionable:   r.Actionable,
		TriggeredBy:  r.TriggeredBy,
		From:         from,
		To:           to,
	}
}

type updateStatusReq struct {
	ID     string `json:"-"` // populated from URI param
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if !model.AlertStatus(r.Status).IsValid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	return nil
}

func (r updateStatusReq) toInput() gitalert.UpdateStatusInput {
	return gitalert.UpdateStatusInput{
		ID:     r.ID,
		Status: model.AlertStatus(r.Status),
	}
}

// --- Response DTOs ---

type alertResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags,omitempty"`

	Branch      string `json:"branch,omitempty"`
	Commit      string `json:"commit,omitempty"`
	PRNumber    int    `json:"pr_number,omitempty"`
	IssueNumber int    `json:"issue_number,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`

	IsActionable   bool   `json:"is_actionable"`
	RequiredAction string `json:"required_action,omitempty"`

	EventAt time.Time `json:"event_at"`

	RepositoryID string  `json:"repository_id"`
	ProjectID    string  `json:"project_id"`
	TriggeredBy  *string `json:"triggered_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAlertResp(a gitalert.Alert) alertResp {
	return alertResp{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		Type:           string(a.Type),
		Status:         string(a.Status),
		Priority:       string(a.Priority),
		Tags:           a.Tags,
		Branch:         a.Branch,
		Commit:         a.Commit,
		PRNumber:       a.PRNumber,
		IssueNumber:    a.IssueNumber,
		ExternalURL:    a.ExternalURL,
		IsActionable:   a.IsActionable,
		RequiredAction: a.RequiredAction,
		EventAt:        a.EventAt,
		RepositoryID:   a.RepositoryID,
		ProjectID:      a.ProjectID,
		TriggeredBy:    a.TriggeredBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type listResp struct {
	Alerts     []alertResp         `json:"alerts"`
	Pagination response.Pagination `json:"pagination"`
}

func (h *handler) newListResp(out gitalert.ListOutput) listResp {
	alerts := make([]alertResp, len(out.Alerts))
	for i, a := range out.Alerts {
		alerts[i] = newAlertResp(a)
	}
	return listResp{
		Alerts:     alerts,
		Pagination: response.NewPagination(out.Page, out.Limit, out.Total),
	}
}

type summaryResp struct {
	Total      int            `json:"total"`
	Unread     int            `json:"unread"`
	Actionable int            `json:"actionable"`
	ByType     map[string]int `json:"by_type"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
}

func (h *handler) newSummaryResp(out gitalert.Summary) summaryResp {
	return summaryResp{
		Total:      out.Total,
		Unread:     out.Unread,
		Actionable: out.Actionable,
		ByType:     out.ByType,
		ByStatus:   out.ByStatus,
		ByPriority: out.ByPriority,
	}
}

type recipientResp struct {
	ID          string     `json:"id"`
	RecipientID string     `json:"recipient_id"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type detailResp struct {
	Alert      alertResp       `json:"alert"`
	Recipients []recipientResp `json:"recipients"`
}

func (h *handler) newDetailResp(out gitalert.DetailOutput) detailResp {
	recipients := make([]recipientResp, len(out.Recipients))
	for i, r := range out.Recipients {
		recipients[i] = recipientResp{
			ID:          r.ID,
			RecipientID: r.RecipientID,
			ReadAt:      r.ReadAt,
			CreatedAt:   r.CreatedAt,
		}
	}
	return detailResp{
		Alert:      newAlertResp(out.Alert),
		Recipients: recipients,
	}
}

type updateStatusResp struct {
	Alert alertResp `json:"alert"`
}

func (h *handler) newUpdateStatusResp(out gitalert.UpdateStatusOutput) updateStatusResp {
	return updateStatusResp{Alert: newAlertResp(out.Alert)}
}
