package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Env                 string `mapstructure:"env"`
	Port                int    `mapstructure:"port"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type MongoCfg struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type CollectionsCfg struct {
	User    string `mapstructure:"user"`
	Contact string `mapstructure:"contact"`
	Alert   string `mapstructure:"alert"`
}

type Config struct {
	App         AppCfg         `mapstructure:"app"`
	Mongo       MongoCfg       `mapstructure:"mongodb"`
	Collections CollectionsCfg `mapstructure:"collections"`

	// derived
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads the optional config file, then lets the environment override:
// DATABASE_URL, DATABASE_NAME, PORT, APP_ENV.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8000)
	v.SetDefault("app.read_timeout_seconds", 15)
	v.SetDefault("app.write_timeout_seconds", 15)
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "safety_alert")
	v.SetDefault("collections.user", "user")
	v.SetDefault("collections.contact", "contact")
	v.SetDefault("collections.alert", "alert")

	_ = v.BindEnv("app.env", "APP_ENV")
	_ = v.BindEnv("app.port", "PORT")
	_ = v.BindEnv("mongodb.uri", "DATABASE_URL")
	_ = v.BindEnv("mongodb.database", "DATABASE_NAME")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ReadTimeout = time.Duration(cfg.App.ReadTimeoutSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteTimeoutSeconds) * time.Second
	return &cfg, nil
}
