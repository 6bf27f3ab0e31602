package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Word entries are trimmed of surrounding whitespace as a side effect.
func (c *Config) Validate() error {
	if c.Wordnik.APIKey == "" {
		return fmt.Errorf("wordnik.api_key is required (set WORDNIK_API_KEY)")
	}
	if c.Wordnik.BaseURL == "" {
		return fmt.Errorf("wordnik.base_url must not be empty")
	}
	if c.Wordnik.Timeout <= 0 {
		return fmt.Errorf("wordnik.timeout must be > 0 (got %v)", c.Wordnik.Timeout)
	}

	if err := c.Fetch.validate(); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	return nil
}

func (f *FetchConfig) validate() error {
	if len(f.Words) == 0 {
		return fmt.Errorf("words must not be empty")
	}
	for i, w := range f.Words {
		w = strings.TrimSpace(w)
		if w == "" {
			return fmt.Errorf("words[%d] is blank", i)
		}
		f.Words[i] = w
	}

	if f.RequestDelay <= 0 {
		return fmt.Errorf("request_delay must be > 0 (got %v)", f.RequestDelay)
	}

	return nil
}
