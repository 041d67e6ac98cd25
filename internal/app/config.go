package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPath string   // .hcl/.yaml file or directory; empty means builtin
	Toggles     []string // node ids toggled in order before the report

	Output    string // text or json
	LogFormat string
	LogLevel  string

	Strict   bool
	SearchLimit int
	Port     int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}
	if cfg.SearchLimit < 0 {
		return nil, errors.New("search-limit cannot be negative")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	for _, id := range cfg.Toggles {
		if id == "" {
			return nil, errors.New("toggle list contains an empty id")
		}
	}
	return &cfg, nil
}
