package config

import (
	"sync"

	"github.com/arthur-debert/factory/pkg/logging"
)

var (
	globalMu     sync.Mutex
	globalConfig *Config
)

// Get returns the process-wide configuration, loading it on first use.
// A broken config file or environment falls back to the embedded defaults
// with a warning, since callers may be package initialisers that cannot
// handle an error.
func Get() *Config {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load(LoadOptions{})
		if err != nil {
			logger := logging.GetLogger("config")
			logger.Warn().Err(err).Msg("Falling back to default configuration")
			cfg = Defaults()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// Initialize replaces the process-wide configuration. A nil cfg reloads it.
// Registries already created keep the settings they were created with.
func Initialize(cfg *Config) {
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()

	if cfg == nil {
		Get()
	}
}
