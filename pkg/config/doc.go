// Package config provides configuration management for Saturn.
//
// Configuration is loaded from a YAML file, defaulted, optionally
// overridden from SATURN_* environment variables, and validated:
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// Values apply in order: defaults, YAML file, environment overrides,
// then validation (which fails fast and reports every invalid field at
// once). Default() returns a ready-to-use configuration for embedding
// and tests.
package config
