package auth

import (
	"net/http"
	"strings"
)

// ExtractBearerToken extracts the JWT token from the Authorization header,
// stripping the "Bearer " prefix. Returns an empty string when absent.
func ExtractBearerToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	return ExtractBearerTokenFromHeader(r.Header.Get("Authorization"))
}

// ExtractBearerTokenFromHeader parses a raw Authorization header value.
func ExtractBearerTokenFromHeader(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(value), "bearer ") {
		return strings.TrimSpace(value[7:])
	}
	return value
}
