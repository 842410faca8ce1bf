package dashboard

import "errors"

// Domain-specific errors for the dashboard package.
var (
	ErrForbidden         = errors.New("operation not allowed for this role")
	ErrNoAssignments     = errors.New("no assignments provided")
	ErrInvalidAssignment = errors.New("assignment requires task number, member and time")
	ErrEmptyTaskNo       = errors.New("task number is empty")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidDateRange  = errors.New("invalid report date range")
	ErrInvalidExportType = errors.New("unknown export type")
	ErrInvalidTab        = errors.New("unknown board tab")
	ErrNoRecords         = errors.New("no records to evaluate")
	ErrStoreUnavailable  = errors.New("task store unavailable")
)
