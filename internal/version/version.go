package version

// Set via -ldflags "-X github.com/doeshing/urlguard/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
