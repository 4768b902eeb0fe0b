package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	repo "teamboard/internal/gitalert/repository"
	"teamboard/internal/model"
)

// filterFrom converts query-surface filters to the repository filter scope.
func filterFrom(
	search string,
	typ model.AlertType,
	status model.AlertStatus,
	priority model.AlertPriority,
	branch, repositoryID string,
	actionable *bool,
	triggeredBy string,
	from, to *time.Time,
) repo.AlertFilter {
	return repo.AlertFilter{
		Search:       search,
		Type:         string(typ),
		Status:       string(status),
		Priority:     string(priority),
		Branch:       branch,
		RepositoryID: repositoryID,
		Actionable:   actionable,
		TriggeredBy:  triggeredBy,
		From:         from,
		To:           to,
	}
}

// dedupKeyFor derives the idempotency key for a delivery. The provider
// delivery id is used when present; otherwise the key is a hash over the
// fields that identify one event occurrence.
func dedupKeyFor(event model.NormalizedEvent, repositoryID string) string {
	if event.DeliveryID != "" {
		return string(event.Provider) + ":" + event.DeliveryID
	}

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%d|%d",
		repositoryID, event.Type, event.Commit, event.PRNumber, event.EventAt.Unix())
	return hex.EncodeToString(h.Sum(nil))
}

// tagsFor derives the free-form tag set attached to a new alert.
func tagsFor(event model.NormalizedEvent) []string {
	tags := []string{
		strings.ToLower(string(event.Provider)),
		strings.ToLower(string(event.Type)),
	}
	if event.Branch != "" {
		tags = append(tags, "branch:"+event.Branch)
	}
	return tags
}

// eventTime falls back to the receive time when the provider omitted one.
func eventTime(event model.NormalizedEvent) time.Time {
	if !event.EventAt.IsZero() {
		return event.EventAt
	}
	if !event.ReceivedAt.IsZero() {
		return event.ReceivedAt
	}
	return time.Now()
}
