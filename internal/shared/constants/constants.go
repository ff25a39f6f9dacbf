// Package constants defines shared constant values used across layers.
package constants

// Context keys set by the auth middleware and read by handlers.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyUser     = "current_user"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Audit action tags.
const (
	AuditActionRegister       = "register"
	AuditActionLogin          = "login"
	AuditActionPasswordChange = "password_change"
	AuditActionCreateFeedback = "create"
	AuditActionUpdateStatus   = "update_status"
)

// Placeholder identity used when an anonymous ticket is shown to a
// reader other than its owner.
const (
	AnonymousStudentID = "anonymous"
	AnonymousName      = "anonymous user"
)
