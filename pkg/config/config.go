package config

import (
	"strings"
)

// Config is the complete factory configuration
type Config struct {
	Registry Registry `koanf:"registry" json:"registry" yaml:"registry"`
	Logging  Logging  `koanf:"logging" json:"logging" yaml:"logging"`
	Output   Output   `koanf:"output" json:"output" yaml:"output"`
}

// Registry holds settings applied to every process-wide registry
type Registry struct {
	// Strict turns a duplicate registration into a startup failure
	Strict bool `koanf:"strict" json:"strict" yaml:"strict"`
	// CaseFold lowercases ids on registration and lookup
	CaseFold bool `koanf:"casefold" json:"casefold" yaml:"casefold"`
}

// Logging holds logger settings
type Logging struct {
	Verbosity int    `koanf:"verbosity" json:"verbosity" yaml:"verbosity"`
	File      string `koanf:"file" json:"file" yaml:"file"`
}

// Output holds CLI rendering settings
type Output struct {
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// KnownFormats lists the accepted output.format values
var KnownFormats = []string{"auto", "term", "terminal", "text", "plain", "json", "yaml", "toml", "xml"}

func isKnownFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range KnownFormats {
		if f == format {
			return true
		}
	}
	return false
}
