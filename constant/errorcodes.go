package constant

// Domain service error codes
const (
	// Campaign service - Validation errors (0xx)
	ErrCodeEmptyName         = "SVC001"
	ErrCodeInvalidCampaignID = "SVC002"

	// Campaign service - Storage errors (1xx)
	ErrCodeStorageFailure = "SVC101"

	// Campaign service - Retrieval errors (2xx)
	ErrCodeCampaignNotFound = "SVC201"

	// Campaign service - Lifecycle errors (3xx)
	ErrCodeNotValidated    = "SVC301"
	ErrCodeSetupIncomplete = "SVC302"
	ErrCodeAlreadyLaunched = "SVC303"
)

// Database error codes
const (
	// General DB errors
	ErrCodeDBGeneral = "DB500"

	// Connection errors (0xx)
	ErrCodeDBOpen    = "DB001"
	ErrCodeDBMigrate = "DB002"

	// Store operation errors (1xx)
	ErrCodeDBInsert = "DB101"

	// Lookup operation errors (2xx)
	ErrCodeDBLookup   = "DB201"
	ErrCodeDBScanRows = "DB202"
	ErrCodeDBList     = "DB203"

	// Update operation errors (3xx)
	ErrCodeDBUpdate = "DB301"

	// Close operation errors (4xx)
	ErrCodeDBClose = "DB401"
)

// Error types for categorization
const (
	// Domain error types
	ErrTypeValidation = "validation"
	ErrTypeStorage    = "storage"
	ErrTypeRetrieval  = "retrieval"
	ErrTypeLifecycle  = "lifecycle"

	// Infrastructure error types
	ErrTypeDB = "db"
)
