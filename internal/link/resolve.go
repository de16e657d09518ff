// Package link resolves documentation URLs and hands them to the system browser.
package link

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidURL is returned when a link cannot be made into an http(s) URL.
	ErrInvalidURL = errors.New("invalid URL")

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Resolve turns the raw link text of a note into an absolute http(s) URL.
// Links without a scheme ("example.com/wiki") get "http://" prepended.
func Resolve(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty link", ErrInvalidURL)
	}

	if u, ok := parseHTTP(raw); ok {
		return u.String(), nil
	}
	if u, ok := parseHTTP("http://" + raw); ok {
		return u.String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
}

func parseHTTP(candidate string) (*url.URL, bool) {
	if err := validate.Var(candidate, "http_url"); err != nil {
		return nil, false
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return nil, false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, false
	}
	return u, true
}
