package discord

// Friendly message constants for Discord responses
const (
	MsgBadInput       = "⚠️ **Check your options**"
	MsgUnknownPrice   = "❓ **Unknown item**\nNo cashable item has that price."
	MsgSlowDown       = "⏳ **Whoa there!**\nToo many requests, try again in a moment."
	MsgServerDown     = "🔌 **Exp table unavailable**\nThe API is not answering right now."
	MsgGenericError   = "❌ Something went wrong."
	MsgNoRows         = "No stages match these options."
	MsgNoQuantities   = "You have no cashable items stored. Pass quantities as options to total them."
	MsgPong           = "Pong! 🏓"
	MsgPongAPIDown    = "Pong! 🏓 The exp-table API is not answering."
	MsgSouriUnitLabel = "総理"
)

// Embed titles and colours
const (
	TitleExpTable  = "📈 EXP / cost ranking"
	TitleEvents    = "🎪 Event stages"
	TitleCashables = "💰 Cashable total"

	ColorExpTable  = 0x3498db
	ColorCashables = 0xf1c40f
)

// Footer constants for standardized embed footers
const (
	FooterExpTable = "Exp Table"
)

// Log messages
const (
	LogMsgRetrying          = "Retrying API request"
	LogMsgRequestFailed     = "API request failed"
	LogMsgServerError       = "Server error, will retry"
	LogMsgCommandFailed     = "Command failed"
	LogMsgRespondFailed     = "Failed to send response"
	LogMsgDeferFailed       = "Failed to send deferred response"
	LogMsgBotReady          = "Bot is ready"
	LogMsgBotRunning        = "Discord bot is now running"
	LogMsgCheckingCommands  = "Checking Discord commands"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated   = "Commands updated"
	LogMsgCeilingsFallback  = "Could not load difficulty ceilings, accepting free text"
	LogMsgCashablesFallback = "Could not load cashable items, /cashable shows stored totals only"
	LogMsgHealthStarting    = "Starting Discord health server"
	LogMsgHealthFailed      = "Discord health server failed"
)
