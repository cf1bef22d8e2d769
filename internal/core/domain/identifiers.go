package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a value and collapses every non-alphanumeric run
// into a single hyphen. Empty results fall back to "default".
func Slugify(value string) string {
	value = strings.ToLower(value)
	value = nonAlphanumeric.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return "default"
	}
	return value
}

// GenerateEventID returns a fallback random event id, used only when
// nothing better can be inferred from the inputs.
func GenerateEventID() string {
	return "evt-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// InferCompanyIDFromFilename derives a company id from a filename stem,
// best-effort. "Acme Corp Q3.pdf" becomes "acme-corp-q3".
func InferCompanyIDFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return Slugify(base)
}
