// Package config loads application configuration from environment variables
// and optional `.env` files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - `.env` files are read first (missing default `.env` is not an error);
//     variables already present in the process environment win.
//   - The environment is then parsed into any struct using `env` tags,
//     optionally under a prefix such as `UAGEN_`.
//
// # Usage
//
//	type Config struct {
//	    Seed   uint64 `env:"SEED"`
//	    Format string `env:"FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("UAGEN_")); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors can be compared with errors.Is: ErrParsingConfig, ErrLoadingEnvFile
// and ErrNilPointer.
package config
