package funcurl

// Routes served by the function URL
const (
	RouteRoot  = "/"
	RouteTable = "/table"
	RouteSum   = "/cashables/sum"
)

// Request field names, shared by query strings and JSON bodies
const (
	FieldWeekday        = "weekday"
	FieldUnit           = "unit"
	FieldDifficulty     = "difficulty"
	FieldMana           = "mana"
	FieldDouble         = "double"
	FieldProtection     = "protection"
	FieldIncludeExtra   = "include_extra"
	FieldOnlyTop20      = "only_top20"
	FieldSeparateEvents = "separate_events"
	FieldQuantities     = "quantities"
)

// Error messages returned to callers
const (
	ErrMsgInvalidBase64    = "invalid base64 body"
	ErrMsgInvalidJSON      = "invalid JSON body"
	ErrMsgNotFound         = "not found"
	ErrMsgMethodNotAllowed = "method not allowed"
	ErrMsgMissingQuantity  = "missing quantities field"
	ErrMsgBadQuantity      = "quantities must map positive prices to 0-999"
	ErrMsgInternal         = "internal error"
)

// Log messages
const (
	LogMsgRequest      = "Function URL request"
	LogMsgBuildFailed  = "Failed to build table"
	LogMsgEncodeFailed = "Failed to encode response"
)
