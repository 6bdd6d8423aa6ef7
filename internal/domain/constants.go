package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for config files (rw-------)
	SecureFilePermissions = 0o600
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Defaults
const (
	DefaultConfigFormatVersion = "1"
	DefaultLogLevel            = "warn"
	DefaultLogFormat           = "text"
	DefaultBatchWorkers        = 4
)
