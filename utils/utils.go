package utils

import (
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Getenv reads an environment variable with a fallback.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// --- Slugs ---

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9 -]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-friendly slug from a display name.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// --- Generated identifiers ---

// GenerateTrackingNumber produces an opaque carrier-style tracking string.
// It is generated, not validated against any carrier.
func GenerateTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TRK" + strings.ToUpper(raw[:16])
}

// --- Money ---

// Round2 rounds a monetary amount to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
