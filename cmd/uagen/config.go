package main

// Config holds the UAGEN_* environment settings. Command-line flags take
// precedence over every field.
type Config struct {
	// Seed makes output reproducible. Zero means a fresh random seed.
	Seed       uint64 `env:"SEED"`
	TablesFile string `env:"TABLES_FILE"`
	Format     string `env:"FORMAT" envDefault:"text"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
}

const envPrefix = "UAGEN_"
