package postgre

import (
	"context"
	"fmt"
	"strings"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
)

// buildFilter renders the shared list/summary filter scope as a WHERE body.
// alias qualifies column references (e.g. "a.") for joined queries.
// Soft-deleted rows are always excluded.
func buildFilter(f repo.AlertFilter, alias string) (string, []any) {
	conditions := []string{alias + "deleted_at IS NULL"}
	var args []any
	idx := 1

	add := func(column, op string, val any) {
		conditions = append(conditions, fmt.Sprintf("%s%s %s $%d", alias, column, op, idx))
		args = append(args, val)
		idx++
	}

	if f.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(%stitle ILIKE $%d OR %sdescription ILIKE $%d)", alias, idx, alias, idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Type != "" {
		add("type", "=", f.Type)
	}
	if f.Status != "" {
		add("status", "=", f.Status)
	}
	if f.Priority != "" {
		add("priority", "=", f.Priority)
	}
	if f.Branch != "" {
		add("branch", "=", f.Branch)
	}
	if f.RepositoryID != "" {
		add("repository_id", "=", f.RepositoryID)
	}
	if f.Actionable != nil {
		add("is_actionable", "=", *f.Actionable)
	}
	if f.TriggeredBy != "" {
		add("triggered_by", "=", f.TriggeredBy)
	}
	if f.From != nil {
		add("event_at", ">=", *f.From)
	}
	if f.To != nil {
		add("event_at", "<=", *f.To)
	}

	return strings.Join(conditions, " AND "), args
}

// ListAlerts returns a filtered page of alerts and the total count over the
// same filter scope.
func (r *implRepository) ListAlerts(ctx context.Context, opt repo.ListAlertsOptions) ([]gitalert.Alert, int, error) {
	where, args := buildFilter(opt.Filter, "")

	// 1. Count total (without pagination)
	countQuery := "SELECT COUNT(*) FROM git_alert WHERE " + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListAlerts"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "event_at DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM git_alert WHERE %s ORDER BY %s", alertColumns, where, orderBy)
	pageArgs := args
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(pageArgs)+1)
		pageArgs = append(pageArgs, opt.Limit)
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(pageArgs)+1)
		pageArgs = append(pageArgs, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAlerts"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var alerts []gitalert.Alert
	for rows.Next() {
		alert, scanErr := scanAlert(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAlerts"), scanErr)
			return nil, 0, repo.ErrFailedToList
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return alerts, total, nil
}

// SummarizeAlerts computes aggregate counts over the filter scope. The unread
// count is scoped to UnreadUserID's recipient read state.
func (r *implRepository) SummarizeAlerts(ctx context.Context, opt repo.SummarizeAlertsOptions) (gitalert.Summary, error) {
	where, args := buildFilter(opt.Filter, "")

	summary := gitalert.Summary{
		ByType:     map[string]int{},
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
	}

	// Totals + actionable in one pass.
	totalQuery := fmt.Sprintf(
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_actionable) FROM git_alert WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, totalQuery, args...).Scan(&summary.Total, &summary.Actionable); err != nil {
		r.l.Errorf(ctx, "%s total: %v", r.dsn("SummarizeAlerts"), err)
		return gitalert.Summary{}, repo.ErrFailedToList
	}

	// Grouped counts share the filter scope so sum(by_status) == total.
	for _, group := range []struct {
		column string
		dest   map[string]int
	}{
		{"type", summary.ByType},
		{"status", summary.ByStatus},
		{"priority", summary.ByPriority},
	} {
		if err := r.groupCount(ctx, group.column, where, args, group.dest); err != nil {
			return gitalert.Summary{}, err
		}
	}

	// Unread: alerts in scope whose recipient row for this user has no read timestamp.
	if opt.UnreadUserID != "" {
		aliasWhere, aliasArgs := buildFilter(opt.Filter, "a.")
		unreadQuery := fmt.Sprintf(`
			SELECT COUNT(*)
			FROM git_alert a
			JOIN git_alert_recipient r ON r.alert_id = a.id
			WHERE r.recipient_id = $%d AND r.read_at IS NULL AND %s`,
			len(aliasArgs)+1, aliasWhere)
		unreadArgs := append(aliasArgs, opt.UnreadUserID)
		if err := r.db.QueryRowContext(ctx, unreadQuery, unreadArgs...).Scan(&summary.Unread); err != nil {
			r.l.Errorf(ctx, "%s unread: %v", r.dsn("SummarizeAlerts"), err)
			return gitalert.Summary{}, repo.ErrFailedToList
		}
	}

	return summary, nil
}

func (r *implRepository) groupCount(ctx context.Context, column, where string, args []any, dest map[string]int) error {
	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM git_alert WHERE %s GROUP BY %s", column, where, column)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s by %s: %v", r.dsn("SummarizeAlerts"), column, err)
		return repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return repo.ErrFailedToList
		}
		dest[key] = count
	}
	if err := rows.Err(); err != nil {
		return repo.ErrFailedToList
	}
	return nil
}
