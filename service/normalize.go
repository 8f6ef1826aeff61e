package service

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

var errInvalidURL = errors.New("invalid url")

// normalizeURL coerces a non-empty value into a canonical absolute URL with
// a forced https scheme: bare hosts gain the scheme, hosts are lowercased,
// a lone trailing slash is dropped. Empty input stays empty.
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", errInvalidURL
	}
	u.Scheme = "https"
	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String(), nil
}

// parseDate parses the wire date format used by experience/education
// entries. Binding has already checked the shape.
func parseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}
