package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQuery          = "Invalid query parameters"
	ErrMsgInvalidPrice          = "Invalid price"
	ErrMsgRenderFailed          = "Failed to render page"
	ErrMsgBuildTableFailed      = "Failed to build table"
	ErrMsgSaveSettingsFailed    = "Failed to save settings"
	ErrMsgSaveQuantityFailed    = "Failed to save quantity"
	ErrMsgSumFailed             = "Failed to sum cashables"
)

// Success messages for API responses
const (
	MsgSettingsSaved = "Settings saved"
	MsgQuantitySaved = "Quantity saved"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Service error"
	LogMsgRenderFailed      = "Failed to render page"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgProfileIssued     = "Issued new profile"
	LogMsgSettingsPersisted = "Persisted settings from page"
)
