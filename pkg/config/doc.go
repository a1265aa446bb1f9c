// Package config handles configuration management for factory.
// Settings are layered from embedded TOML defaults, an optional TOML file
// and FACTORY_* environment variables.
//
// Registrations run from package initialisers, before main and before any
// flag is parsed, so the registry reads its settings through Get, which loads
// once and never fails.
package config
