package registry

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const sourceIDMaxLength = 64

var (
	sourceIDPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$|^[a-z0-9]$`)
	nonAlphanumericExpr = regexp.MustCompile(`[^a-z0-9]+`)
	schemeExpr          = regexp.MustCompile(`^[a-z][a-z0-9+.-]*://`)
)

// SourceID derives a stable identifier from a remote URL:
// "https://github.com/acme/widgets.git" becomes "github-com-acme-widgets".
func SourceID(url string) string {
	trimmed := strings.ToLower(strings.TrimSpace(url))
	trimmed = schemeExpr.ReplaceAllString(trimmed, "")
	trimmed = strings.TrimPrefix(trimmed, "git@")
	trimmed = strings.TrimSuffix(strings.TrimRight(trimmed, "/"), ".git")

	if id := SanitizeFilename(trimmed); id != "" {
		return id
	}
	return "source-" + uuid.NewString()[:8]
}

// ValidateSourceID ensures the provided ID matches the allowed pattern.
func ValidateSourceID(id string) error {
	if id == "" {
		return fmt.Errorf("source ID cannot be empty")
	}
	if len(id) > sourceIDMaxLength {
		return fmt.Errorf("source ID %q is too long: maximum length is %d characters", id, sourceIDMaxLength)
	}
	if !sourceIDPattern.MatchString(id) {
		return fmt.Errorf("invalid source ID %q: must match %s", id, sourceIDPattern.String())
	}
	return nil
}

// SanitizeFilename normalizes a name into an identifier-friendly format.
func SanitizeFilename(name string) string {
	lowered := strings.ToLower(name)
	sanitized := nonAlphanumericExpr.ReplaceAllString(lowered, "-")
	sanitized = strings.Trim(sanitized, "-")

	if len(sanitized) > sourceIDMaxLength {
		sanitized = strings.Trim(sanitized[:sourceIDMaxLength], "-")
	}
	return sanitized
}
