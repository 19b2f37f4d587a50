// Package config loads typed configuration structs from environment variables.
//
// Load reads `env` struct tags through github.com/caarlos0/env and, once per
// process, loads a .env file from the working directory through
// github.com/joho/godotenv when one exists. WithPrefix namespaces the tags,
// which is how vtree reads its process-wide defaults from VTREE_* variables,
// and WithEnvFiles loads additional dotenv files that must exist.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		RedisURL string `env:"REDIS_URL"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig and dotenv failures with
// ErrLoadingEnvFile, so callers can use errors.Is.
package config
