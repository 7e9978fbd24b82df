// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing. Load caches each
// configuration type after the first successful parse; Parse always reads the
// current environment.
//
// # Usage
//
//	type Config struct {
//	    Adapter string `env:"FORMSTATE_ADAPTER" envDefault:"plain"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
//
// # Testing Helpers
//
// ResetCache clears cached configurations between tests.
package config
