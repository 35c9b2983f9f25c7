// Package config loads widget configuration from the environment or from a
// YAML/JSON file.
//
// Environment loading wraps `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files (later files win).
//   - Load parses the environment into a struct using `env` tags and caches
//     the result per type for the lifetime of the process.
//   - ForceReloadConfig and ResetCache drop cached values, which is handy in
//     tests.
//
// File loading uses `gopkg.in/yaml.v3`. Because JSON is a subset of YAML the
// same call reads both formats:
//
//	var data struct {
//		Price      rangeslider.Config `yaml:"price"`
//		Pagination pagination.Config  `yaml:"pagination"`
//	}
//	if err := config.LoadFile("widgets.json", &data); err != nil {
//		return err
//	}
//
// Must* variants panic on failure for configuration that is required at
// startup.
package config
