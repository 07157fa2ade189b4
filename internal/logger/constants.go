package logger

// ContextKeyRequestID is the context key under which WithRequestID stores the id
const ContextKeyRequestID = "request_id"

// Accepted LOG_LEVEL values. "warning" is an alias of "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "exp-table"
	DefaultVersion     = "dev"
	// ProductionVersion is reported by production configs built without ldflags
	ProductionVersion = "1.0.0"
)

// ENVIRONMENT values with logging defaults of their own
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attributes attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
