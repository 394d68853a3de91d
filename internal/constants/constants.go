package constants

// ContextKeyUserID is the gin context / session key holding the
// authenticated user's id.
const ContextKeyUserID = "user_id"

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "okr_session"

// Pagination bounds.
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// Quarter bounds accepted for OKRs.
const (
	MinQuarterYear = 2020
	MaxQuarterYear = 2050
)

// Key-result cardinality per OKR.
const (
	MinKeyResults = 1
	MaxKeyResults = 5
)

// MaxReviewContentLength bounds review content (minimum is one character).
const MaxReviewContentLength = 2000
