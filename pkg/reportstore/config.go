package reportstore

import (
	"time"

	"github.com/dmitrymomot/vtree/pkg/config"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config selects and tunes the backend. Fields are populated from the
// environment through pkg/config.
type Config struct {
	Driver         string        `env:"REPORT_STORE" envDefault:"memory"`                // Driver is "memory" or "redis".
	TTL            time.Duration `env:"REPORT_TTL" envDefault:"24h"`                     // TTL of stored reports; zero keeps them.
	Capacity       int           `env:"REPORT_CAPACITY" envDefault:"10000"`              // Capacity of the memory backend.
	KeyPrefix      string        `env:"REPORT_KEY_PREFIX" envDefault:"vtree:report:"`    // KeyPrefix namespaces redis keys.
	RedisURL       string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // RedisURL in the format "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts to connect to redis.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval between connection attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds all connection attempts.
}

// LoadConfig reads Config from the environment.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
