package config

import (
	"fmt"
	"strings"
)

type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

// Set принимает только http(s) адрес; завершающий слэш отбрасывается
func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
