package constant

// Request context keys
const (
	RequestIDKey = "request_id"
)

// HTTP header names
const (
	HeaderRequestID = "X-Request-ID"
)

// Function/Context names
const (
	// Domain context names
	CtxDomain           = "domain"
	CtxCreateCampaign   = "CreateCampaign"
	CtxGetCampaign      = "GetCampaign"
	CtxListCampaigns    = "ListCampaigns"
	CtxValidateCampaign = "ValidateCampaign"
	CtxSetupCampaign    = "SetupCampaign"
	CtxLaunchCampaign   = "LaunchCampaign"

	// Infrastructure context names
	CtxDB       = "db"
	CtxStore    = "Store"
	CtxFindByID = "FindByID"
	CtxList     = "List"
	CtxUpdate   = "Update"
	CtxClose    = "Close"
	CtxAPI      = "api"

	// General context names
	CtxRouter      = "Router"
	CtxMain        = "Main"
	CtxDiagnostics = "Diagnostics"
	CtxQRCode      = "CampaignQR"
)

// Data field keys
const (
	// Service data fields
	DataService      = "service"
	DataCampaignID   = "campaign_id"
	DataCampaignName = "campaign_name"
	DataStatus       = "campaign_status"
	DataIsValid      = "is_valid"

	// Database data fields
	DataPath         = "path"
	DataElapsed      = "elapsed"
	DataRows         = "rows"
	DataSQL          = "sql"
	DataData         = "data"
	DataRowsAffected = "rows_affected"

	// API data fields
	DataMethod      = "method"
	DataHTTPStatus  = "status"
	DataLatency     = "latency_ms"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataErrorID     = "error_id"
	DataPort        = "port"
	DataDBPath      = "db_path"
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrEmptyName        = "Campaign name cannot be empty"
	ErrInvalidID        = "Campaign id must be a positive integer"
	ErrCampaignNotFound = "campaign not found"
	ErrNotValidated     = "campaign has not passed validation"
	ErrSetupIncomplete  = "campaign setup is not complete"
	ErrAlreadyLaunched  = "campaign is already launched"
)

// Error codes
const (
	ErrCodeAPIDecodeRequest  = "API001"
	ErrCodeAPIServiceError   = "API002"
	ErrCodeAppDBInit         = "APP001"
	ErrCodeAppServerStart    = "APP002"
	ErrCodeAppServerShutdown = "APP003"
)

// Error types
const (
	ErrTypeDomain = "domain"
	ErrTypeAPI    = "api"
	ErrTypeApp    = "application"
)

// API routes
const (
	RouteCreateCampaign   = "/campaigns"
	RouteListCampaigns    = "/campaigns"
	RouteGetCampaign      = "/campaigns/{campaignID}"
	RouteValidateCampaign = "/campaigns/{campaignID}/validate"
	RouteSetupCampaign    = "/campaigns/{campaignID}/setup"
	RouteLaunchCampaign   = "/campaigns/{campaignID}/launch"
	RouteCampaignQR       = "/campaigns/{campaignID}/qr"
	RouteHealthcheck      = "/health"

	// Diagnostic fault-injection routes
	RouteTestError        = "/test/error"
	RouteTestTableMissing = "/test/table-missing"
	RouteTestDBDown       = "/test/db-unavailable"
	RouteTestNullRef      = "/test/null-reference"
	RouteTestValidation   = "/test/validation"
	RouteTestNotFound     = "/test/not-found"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Message constants for application
const (
	MsgApplicationStarting = "Application starting"
	MsgFailedToInitDB      = "Failed to initialize database"
	MsgServerStarting      = "Server starting"
	MsgServerFailedToStart = "Server failed to start"
	MsgServerShuttingDown  = "Server shutting down"
	MsgServerShutdownError = "Error during server shutdown"
	MsgServerStopped       = "Server stopped"
	MsgRequestReceived     = "Request received"
	MsgRequestCompleted    = "Request completed"
	MsgSettingUpRoutes     = "Setting up API routes"
	MsgHealthcheckRequest  = "Handling healthcheck request"
	MsgHealthy             = "Healthy"
	MsgHandlingCreate      = "Handling create campaign request"
	MsgHandlingLaunch      = "Handling launch campaign request"
	MsgFaultInjected       = "Diagnostic fault injected"
)

// Cache Namespace
const (
	CampaignNamespace = "CAMPAIGN"
)
