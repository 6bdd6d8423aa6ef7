package filesystem

import (
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory holding config and rules files.
const AppDirName = ".urlguard"

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// AppDir returns ~/.urlguard.
func AppDir() string {
	return filepath.Join(UserHomeDir(), AppDirName)
}

// ExpandHome replaces a leading ~/ with the home directory.
func ExpandHome(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return path
}
