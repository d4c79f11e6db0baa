package main

import (
	"github.com/appcadastro/registro/pkg/httpserver"
	"github.com/appcadastro/registro/pkg/ratelimiter"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	driverMemory   = "memory"
	driverRedis    = "redis"
	driverPostgres = "postgres"
	driverMongo    = "mongo"
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	Name          string `env:"APP_NAME" envDefault:"registro"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	LoginPath     string `env:"LOGIN_PATH" envDefault:"/login"`
	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"10"`
	MountPath     string `env:"REGISTRATION_PATH" envDefault:"/registro"`
	RateLimit     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	HTTP    httpserver.Config
	Limiter ratelimiter.Config
}
