package core

import (
	"os"
	"path/filepath"
	"strings"
)

// CleanString trims all leading and trailing white space in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Getwd returns the app's working directory; the executable's directory is
// assumed when the OS working directory cannot be determined.
func Getwd() string {
	wd, err := os.Getwd()
	if err == nil {
		return wd
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	return "."
}
