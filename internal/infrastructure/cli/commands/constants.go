package commands

// Error messages
const (
	ErrConfigLoaderUnavailable   = "config loader unavailable"
	ErrDoctorServiceUnavailable  = "doctor service unavailable"
	ErrAnalyzeServiceUnavailable = "analyze service unavailable"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
)

// ExitCodeRiskThreshold is returned when --fail-on is reached.
const ExitCodeRiskThreshold = 2
