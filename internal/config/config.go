package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TTT_LOG_FILE" env-default:"tictactoe.log"`
	DarkMode bool   `yaml:"dark-mode" env:"TTT_DARK_MODE" env-default:"false"`
	HTTPPort string `yaml:"http-port" env:"TTT_HTTP_PORT" env-default:""`
	Sound    Sound  `yaml:"sound"`
	Redis    Redis  `yaml:"redis"`
}

type Sound struct {
	Mute    bool          `yaml:"mute" env:"TTT_SOUND_MUTE" env-default:"false"`
	Dir     string        `yaml:"dir" env:"TTT_SOUND_DIR" env-default:"./sounds"`
	Timeout time.Duration `yaml:"timeout" env:"TTT_SOUND_TIMEOUT" env-default:"3s"`
}

// Redis is optional; an empty host disables outcome publishing.
type Redis struct {
	Host    string `yaml:"host" env:"TTT_REDIS_HOST" env-default:""`
	Port    string `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TTT_REDIS_CHANNEL" env-default:"tictactoe:outcomes"`
}

// MustLoad - load configuration from the yml file, falling back to env and defaults when the file is absent.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return conf
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
