// Package version exposes the binary version embedded at build time.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// Get returns the current version, with whitespace trimmed.
func Get() string {
	return strings.TrimSpace(raw)
}
