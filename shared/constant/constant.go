package constant

import (
	"time"
)

const (
	ContextGuest  = "guest"
	ContextSystem = "system"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserPhone contextKey = "user_phone"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

// Account types double as RBAC roles.
const (
	RoleClient   = "CLIENTE"
	RoleProvider = "CONECTA_PRO"
)

const (
	RequestParamPage     = "page"
	RequestParamPageSize = "page_size"
	RequestParamLimit    = "limit"
	RequestParamSortBy   = "sort_by"
	RequestParamSortDir  = "sort_dir"
	RequestParamStatus   = "status"
	RequestParamSearch   = "q"
	RequestParamRating   = "rating_filter"
	RequestParamSort     = "sort"
)

const (
	RequestParamID              = "id"
	RequestParamRequestID       = "requestId"
	RequestParamServiceID       = "serviceId"
	RequestParamCategoryID      = "categoryId"
	RequestParamLocationID      = "locationId"
	RequestParamPaymentMethodID = "paymentMethodId"
	RequestMaxMemory            = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	MaxValueLimit       = 100
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
	TimeOfDay      = "15:04"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"
	OtelJobScopeName        = "job"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "El servidor se está apagando"
	ResponseErrorUnhealthy            = "El servidor no está disponible"
	ResponseErrorRequestLimitExceeded = "Demasiadas solicitudes, intenta nuevamente más tarde"
	ResponseErrorGeneric              = "Error interno del servidor"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvStaging     = "staging"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
