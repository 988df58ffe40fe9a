package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	GigaChat    GigaChatConfig
	Storage     StorageConfig
	Prompt      PromptConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
	MaxUploadBytes  int64         `env:"SERVER_MAX_UPLOAD_BYTES" envDefault:"33554432"`
}

// GigaChatConfig holds the remote API endpoints. The credential itself is
// supplied per request through the form, never through the environment.
type GigaChatConfig struct {
	AuthURL            string        `env:"GIGACHAT_AUTH_URL" envDefault:"https://ngw.devices.sberbank.ru/api/v2/oauth"`
	BaseURL            string        `env:"GIGACHAT_BASE_URL" envDefault:"https://gigachat.devices.sberbank.ru/api/v1"`
	InsecureSkipVerify bool          `env:"GIGACHAT_INSECURE_SKIP_VERIFY" envDefault:"true"`
	Timeout            time.Duration `env:"GIGACHAT_TIMEOUT" envDefault:"2m"`
}

type StorageConfig struct {
	// Dir is where uploads are spooled. Empty means os.TempDir.
	Dir string `env:"STORAGE_DIR"`
}

type PromptConfig struct {
	Path string `env:"DEFAULT_PROMPT_PATH" envDefault:"default_prompt.txt"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
