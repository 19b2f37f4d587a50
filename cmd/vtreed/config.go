package main

import (
	"time"

	"github.com/dmitrymomot/vtree/pkg/reportstore"
)

// Config is read from the environment, see config.MustLoad.
type Config struct {
	AppName         string        `env:"APP_NAME" envDefault:"vtreed"`
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxBodySize     int64         `env:"HTTP_MAX_BODY_SIZE" envDefault:"1048576"`

	Store reportstore.Config
}
