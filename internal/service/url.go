package service

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultScheme = "https://"

// NormalizeURL дописывает https:// к адресам без схемы и проверяет синтаксис
func NormalizeURL(raw string) (string, error) {
	normalized := raw
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		normalized = defaultScheme + raw
	}

	parsed, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidURL, raw)
	}

	return normalized, nil
}
