package config

import "time"

// Config is the root application configuration.
type Config struct {
	Wordnik WordnikConfig `yaml:"wordnik"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Log     LogConfig     `yaml:"log"`
}

// WordnikConfig holds settings for the Wordnik definitions API.
type WordnikConfig struct {
	BaseURL string        `yaml:"base_url" env:"WORDNIK_BASE_URL" env-default:"https://api.wordnik.com/v4/word.json"`
	APIKey  string        `yaml:"api_key"  env:"WORDNIK_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"WORDNIK_TIMEOUT"  env-default:"10s"`
}

// FetchConfig holds the word list and request pacing for a batch run.
type FetchConfig struct {
	Words        []string      `yaml:"words"         env:"FETCH_WORDS"         env-separator:"," env-default:"食べる,食,食事,食堂,食欲"`
	RequestDelay time.Duration `yaml:"request_delay" env:"FETCH_REQUEST_DELAY" env-default:"1s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
