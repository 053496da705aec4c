package constant

// Keys of the system_config table. The set is closed: settings are provisioned
// once by setup and read-only at runtime.
const (
	ConfigKeyLineToken     = "LINE_ACCESS_TOKEN"
	ConfigKeyAdminID       = "ADMIN_ID"
	ConfigKeyCloudName     = "CLOUDINARY_NAME"
	ConfigKeyCloudPreset   = "CLOUDINARY_PRESET"
	ConfigKeyLiffID        = "LIFF_ID"
	ConfigKeyLineChannelID = "LINE_CHANNEL_ID"
)

// TestSentinelToken is the placeholder identity the storefront uses when it
// runs outside the chat client. It must never verify as anyone.
const TestSentinelToken = "BROWSER_TEST_USER"

type contextKey string

// SubjectIDKey carries the verified platform subject id through a request context.
const SubjectIDKey contextKey = "subject_id"

// RequestIDKey carries the per-request audit id assigned by the logging middleware.
const RequestIDKey contextKey = "request_id"
