// FILE: lixenwraith/cliconf/home.go
package cliconf

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Path markers expanded by ReplaceHome
const (
	HomeMarker = "$HOME"
	BaseMarker = "$BASE"
)

// ReplaceHome expands a leading "~", "$HOME" and "$BASE" markers in path.
// base is the platform data directory that $BASE refers to.
// The path is returned unchanged when the home directory cannot be determined.
func ReplaceHome(base, path string) string {
	if strings.Contains(path, BaseMarker) {
		path = strings.ReplaceAll(path, BaseMarker, base)
	}

	if !strings.HasPrefix(path, "~") && !strings.Contains(path, HomeMarker) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	path = strings.ReplaceAll(path, HomeMarker, home)
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}

// DataDir returns the platform data directory for app:
// XDG data home on Linux, Application Support on macOS, %APPDATA% on Windows
func DataDir(app string) string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, app)
		}
		return filepath.Join(HomeMarker, "AppData", "Roaming", app)
	case "darwin":
		return filepath.Join(HomeMarker, "Library", "Application Support", app)
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, app)
		}
		return filepath.Join(HomeMarker, ".local", "share", app)
	}
}
