package settings

import "strconv"

// Storage keys. These match the keys the browser tool kept in local storage so
// exported values can be imported unchanged.
const (
	KeyDifficulty         = "exp-table:Difficulty"
	KeyIncludeExtraStage  = "exp-table:IncludeExtraStage"
	KeyOnlyTop20          = "exp-table:OnlyTop20"
	KeySeparateEventStage = "exp-table:SeparateEventStage"

	cashableKeyPrefix = "num_cashable_"
)

// Encoded boolean values
const (
	ValueTrue  = "1"
	ValueFalse = "0"
)

// MaxProfileLength bounds profile identifiers (UUIDs and Discord snowflakes fit easily)
const MaxProfileLength = 64

// CashableKey returns the key holding the stored quantity for a cashable price
func CashableKey(price int) string {
	return cashableKeyPrefix + strconv.Itoa(price)
}

// EncodeBool encodes a boolean setting
func EncodeBool(b bool) string {
	if b {
		return ValueTrue
	}
	return ValueFalse
}

// DecodeBool decodes a stored boolean. Absent or empty values give def, "0" is
// false and any other value is true.
func DecodeBool(raw string, present, def bool) bool {
	if !present || raw == "" {
		return def
	}
	return raw != ValueFalse
}

// DecodeInt decodes a stored integer; absent or malformed values give 0
func DecodeInt(raw string, present bool) int {
	if !present {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// Log messages
const (
	LogMsgReadFailed    = "Settings read failed, using defaults"
	LogMsgInvalidStored = "Stored setting is invalid, using default"
	LogMsgSettingsSaved = "Settings saved"
	LogMsgPublishFailed = "Failed to publish settings event"
	LogMsgMemoryBackend = "Using in-memory settings storage"
)
