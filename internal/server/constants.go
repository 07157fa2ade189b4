package server

import (
	"net/http"
	"time"
)

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Client repeatedly rate limited"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgRateLimited      = "Request rate limited"
	LogMsgStaticDisabled   = "Static image directory not configured"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Header redaction marker
const RedactedValue = "[REDACTED]"

// Defaults applied when Config leaves a field zero
const (
	DefaultMaxBodyBytes      int64 = 1 << 20
	DefaultRateLimitRPS            = 10.0
	DefaultRateLimitBurst          = 30
	DefaultReadHeaderTimeout       = 5 * time.Second
)

// Detector tuning
const (
	detectorWindow        = 5 * time.Minute
	failedAuthAlertAfter  = 5
	rateLimitedAlertEvery = 100
	limiterIdleTTL        = 10 * time.Minute
	maxTrackedClients     = 10000
)

// ProtectedMethods require the API key on /api/v1 when one is configured
var ProtectedMethods = []string{http.MethodPut, http.MethodPatch, http.MethodDelete}

// quietPaths are not request-logged
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}
