package gitalert

import "errors"

var (
	ErrAlertNotFound    = errors.New("alert not found")
	ErrOrphanEvent      = errors.New("event repository is not tracked")
	ErrInvalidEventType = errors.New("invalid alert type")
	ErrInvalidStatus    = errors.New("invalid alert status")
	ErrNotRecipient     = errors.New("user is not a recipient of this alert")
)
