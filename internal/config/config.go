package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the tool configuration, loaded from the environment.
type Config struct {
	AppEnv      string `env:"APP_ENV" env-default:"development"`
	LogLevel    string `env:"SDF_LOG_LEVEL" env-default:"info"`
	DataDir     string `env:"SDF_DATA_DIR" env-default:"./data"`           // default location for the dataset file
	DatasetFile string `env:"SDF_DATASET_FILE" env-default:"dialogues.db"` // dataset filename inside DataDir
	PrettyJSON  bool   `env:"SDF_PRETTY_JSON" env-default:"true"`          // default JSON formatting for saves
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	// .env is optional; production deployments set real env vars.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
