package domain

import (
	"errors"
	"strings"
)

// Status represents the admin review lifecycle of an order record.
type Status string

const (
	StatusUnknown   Status = ""
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
	StatusCompleted Status = "completed"
)

// ErrInvalidStatusTransition rejects review actions that do not follow the
// pending -> approved|denied, approved -> completed lifecycle.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

var allowedStatuses = map[string]Status{
	string(StatusPending):   StatusPending,
	string(StatusApproved):  StatusApproved,
	string(StatusDenied):    StatusDenied,
	string(StatusCompleted): StatusCompleted,
}

// NormalizeStatus returns the canonical Status for the given input.
// Unknown statuses are lowercased and returned as-is to avoid data loss.
func NormalizeStatus(value any) Status {
	s, ok := value.(string)
	if !ok {
		return StatusUnknown
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return StatusUnknown
	}
	if status, ok := allowedStatuses[trimmed]; ok {
		return status
	}
	return Status(trimmed)
}

// CanTransitionTo reports whether next is a legal successor of s. Denied and
// completed are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusDenied
	case StatusApproved:
		return next == StatusCompleted
	default:
		return false
	}
}
