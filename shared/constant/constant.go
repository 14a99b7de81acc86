package constant

const (
	RequestParamID = "id"
)

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

// Booking domain tokens as the external booking API expects them.
const (
	SessionTypeHalfDay = "half_day"
	SessionTypeFullDay = "full_day"

	CustomerStatusWaiting = "Waiting"
	SessionStatusPending  = "Pending"

	TariffStandard = "standard"

	ReservationChannelWebsite = "website"
)

// The reduced tariff applies to sessions starting within this many days.
const (
	ReducedWindowDays = 3
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelS3ScopeName = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
