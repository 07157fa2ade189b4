package catalog

import "time"

// Data file names, relative to the catalogue directory
const (
	FileStages    = "stages.json"
	FileEvents    = "events.json"
	FileCashables = "cashables.json"
	FileCeilings  = "ceilings.json"
)

// SourceEmbedded is reported when the built-in data is in use
const SourceEmbedded = "embedded"

// VersionLength is the number of hex digits kept from the content hash
const VersionLength = 12

// ReloadDebounce coalesces bursts of file events from editors that write in several steps
const ReloadDebounce = 200 * time.Millisecond

// Log messages
const (
	LogMsgCatalogLoaded       = "Catalogue loaded"
	LogMsgCatalogReloaded     = "Catalogue reloaded"
	LogMsgCatalogReloadFailed = "Catalogue reload failed, keeping previous snapshot"
	LogMsgWatcherStarted      = "Watching catalogue directory"
	LogMsgWatcherError        = "Catalogue watcher error"
	LogMsgWatcherStopped      = "Catalogue watcher stopped"
	LogMsgPublishFailed       = "Failed to publish catalogue event"
)
