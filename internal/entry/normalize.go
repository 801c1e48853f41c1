package entry

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// NormalizeURL validates a user-supplied URL and defaults the scheme to
// https when a bare host/path was given. URLs that already carry an
// http(s) scheme are stored unchanged.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	if !schemePattern.MatchString(raw) {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%w: malformed url", ErrInvalidInput)
	}

	return raw, nil
}

// EnsureScheme prefixes https:// when the stored target lacks a scheme.
// Older records may predate creation-time normalization, so the read path
// normalizes again before redirecting.
func EnsureScheme(target string) string {
	if schemePattern.MatchString(target) {
		return target
	}

	return "https://" + target
}
