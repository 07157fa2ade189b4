package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept at startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting exp table service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event and storage wiring
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgEventObserved          = "Event observed"
	LogMsgStorageReady           = "Settings storage ready"
	LogMsgCatalogWatchStarted    = "Catalogue hot reload enabled"
	LogMsgCatalogWatchFailed     = "Catalogue watcher exited with error"

	ErrMsgFailedOpenStorage = "failed to open settings storage"
	ErrMsgFailedMigrate     = "failed to migrate settings storage"
	ErrMsgFailedLoadCatalog = "failed to load catalogue"
	ErrMsgFailedRenderer    = "failed to parse page templates"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingWatcher      = "Stopping catalogue watcher..."
	LogMsgClosingStorage       = "Closing settings storage..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

// DefaultShutdownTimeout bounds GracefulShutdown when the caller has no deadline
const DefaultShutdownTimeout = 10 * time.Second
