package bootstrap

// Log messages for startup
const (
	LogMsgLoggingInitialized     = "Logging initialized"
	LogMsgStartingService        = "Starting shooter-mock-api"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgEventSystemInitialized = "Event system initialized"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingEventStream  = "Stopping event stream"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)

// Environments that log source locations
var sourceEnvironments = map[string]bool{
	"dev":         true,
	"development": true,
}
