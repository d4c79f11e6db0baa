// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with `env` and `envDefault` tags
// (github.com/caarlos0/env); .env files are read with github.com/joho/godotenv.
// Each struct type is parsed once per process and served from a cache
// afterwards, so packages can call Load for the same type independently.
package config
