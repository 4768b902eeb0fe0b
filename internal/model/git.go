package model

// Provider identifies an external git hosting provider.
type Provider string

const (
	ProviderGitHub Provider = "GITHUB"
	ProviderGitLab Provider = "GITLAB"
)

// IsValid reports whether p is a known provider.
func (p Provider) IsValid() bool {
	return p == ProviderGitHub || p == ProviderGitLab
}

// AlertType is the canonical alert category. The set is closed: the DB check
// constraint mirrors these values, and parsers may only emit them.
type AlertType string

const (
	AlertTypePush        AlertType = "PUSH"
	AlertTypePullRequest AlertType = "PULL_REQUEST"
	AlertTypeMerge       AlertType = "MERGE"
	AlertTypeComment     AlertType = "COMMENT"
	AlertTypeConflict    AlertType = "CONFLICT"
	AlertTypeBuild       AlertType = "BUILD"
	AlertTypeTest        AlertType = "TEST"
	AlertTypeDeployment  AlertType = "DEPLOYMENT"
	AlertTypePipeline    AlertType = "PIPELINE"
	AlertTypeWorkflowRun AlertType = "WORKFLOW_RUN"
)

var alertTypes = map[AlertType]struct{}{
	AlertTypePush:        {},
	AlertTypePullRequest: {},
	AlertTypeMerge:       {},
	AlertTypeComment:     {},
	AlertTypeConflict:    {},
	AlertTypeBuild:       {},
	AlertTypeTest:        {},
	AlertTypeDeployment:  {},
	AlertTypePipeline:    {},
	AlertTypeWorkflowRun: {},
}

// IsValid reports whether t is part of the canonical alert-type set.
func (t AlertType) IsValid() bool {
	_, ok := alertTypes[t]
	return ok
}

// AlertStatus is the soft lifecycle state of an alert.
type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "NEW"
	AlertStatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatusResolved     AlertStatus = "RESOLVED"
	AlertStatusDismissed    AlertStatus = "DISMISSED"
)

// IsValid reports whether s is a known alert status.
func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusNew, AlertStatusAcknowledged, AlertStatusResolved, AlertStatusDismissed:
		return true
	}
	return false
}

// AlertPriority is the alert severity. Defaults to MEDIUM.
type AlertPriority string

const (
	AlertPriorityLow      AlertPriority = "LOW"
	AlertPriorityMedium   AlertPriority = "MEDIUM"
	AlertPriorityHigh     AlertPriority = "HIGH"
	AlertPriorityCritical AlertPriority = "CRITICAL"
)

// IsValid reports whether p is a known priority.
func (p AlertPriority) IsValid() bool {
	switch p {
	case AlertPriorityLow, AlertPriorityMedium, AlertPriorityHigh, AlertPriorityCritical:
		return true
	}
	return false
}
