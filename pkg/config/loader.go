package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/factory/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "FACTORY_"
	// EnvConfigFile names an explicit config file
	EnvConfigFile = "FACTORY_CONFIG"
	// AppDirName is the directory under the XDG config home
	AppDirName = "factory"
	// FileName is the config file looked up under the XDG config home
	FileName = "config.toml"
)

// LoadOptions tunes a single Load call
type LoadOptions struct {
	// ConfigFile is an explicit TOML file. It must exist when set.
	ConfigFile string

	// SkipFile ignores config files entirely
	SkipFile bool

	// SkipEnv ignores FACTORY_* environment variables
	SkipEnv bool

	// Overrides are applied last, keyed by dotted path (e.g. "registry.strict")
	Overrides map[string]interface{}
}

// Load builds a Config from defaults, the config file, the environment and
// explicit overrides, in that order.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path, explicit := resolveConfigFile(opts.ConfigFile)
	if path != "" && !opts.SkipFile {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
		} else if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults returns the configuration described by the embedded defaults only
func Defaults() *Config {
	cfg, err := Load(LoadOptions{SkipFile: true, SkipEnv: true})
	if err != nil {
		// The embedded file is part of the binary; failing to parse it is a build defect.
		panic(err)
	}
	return cfg
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must be >= 0, got %d", c.Logging.Verbosity)
	}
	if !isKnownFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output.format %q", c.Output.Format).
			WithDetail("known", KnownFormats)
	}
	return nil
}

// resolveConfigFile returns the file to read and whether it was asked for
// explicitly (flag or FACTORY_CONFIG) rather than discovered.
func resolveConfigFile(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if fromEnv := os.Getenv(EnvConfigFile); fromEnv != "" {
		return fromEnv, true
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	if configHome == "" {
		return "", false
	}
	return filepath.Join(configHome, AppDirName, FileName), false
}
