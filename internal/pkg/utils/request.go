package utils

import (
	"net/http"
	"openhours-service/internal/pkg/exceptions"
	"time"
)

// ParseTimeQueryParam reads an RFC3339 query parameter, falling back to the
// given default when the parameter is absent.
func ParseTimeQueryParam(r *http.Request, name string, defaultValue time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return parsed, nil
}

// ParseOptionalTimeQueryParam reads an RFC3339 query parameter that may be
// absent entirely.
func ParseOptionalTimeQueryParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	return &parsed, nil
}

func QueryParamOrDefault(r *http.Request, name, defaultValue string) string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultValue
	}
	return value
}
