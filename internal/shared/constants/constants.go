package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Similar-request search returns at most this many matches.
	SimilarRequestLimit = 5
	// Top tags / customers in request stats.
	StatsTopN = 10
	// Trailing months covered by the monthly request histogram.
	StatsMonths = 12

	// HTTP Headers
	HeaderAuthorization  = "Authorization"
	HeaderXRequestID     = "X-Request-ID"
	HeaderAcceptLanguage = "Accept-Language"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)
