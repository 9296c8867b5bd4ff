package score

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath resolves filename against a data directory next to the app
// executable, falling back to the working directory when the executable
// lives in a Go temp build dir (go run) or cannot be located.
func DefaultPath(filename string) string {
	return filepath.Join(dataDir(), filename)
}

func dataDir() string {
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		if !isTempExeDir(exeDir) {
			return exeDir
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// isTempExeDir returns true when the executable directory looks like a Go
// temp build path.
func isTempExeDir(dir string) bool {
	clean := filepath.Clean(dir)
	if strings.Contains(clean, string(filepath.Separator)+"go-build") {
		return true
	}
	return strings.HasPrefix(clean, filepath.Clean(os.TempDir())+string(filepath.Separator))
}
