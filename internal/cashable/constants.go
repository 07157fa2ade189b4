package cashable

// Log messages
const (
	LogMsgQuantitySaved = "Cashable quantity saved"
	LogMsgUnknownPrice  = "Unknown cashable price"
)
