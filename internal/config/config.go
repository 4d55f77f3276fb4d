package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	GinMode     string
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
}

// NewConfig reads config/config.toml (override with CONFIG_NAME), then
// layers .env and environment variables on top.
func NewConfig() (*Config, error) {
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on config file and environment")
	}

	viper.BindEnv("GinMode", "GIN_MODE")
	viper.BindEnv("DBDriver", "DB_DRIVER")
	viper.BindEnv("DBHost", "DB_HOST")
	viper.BindEnv("DBPort", "DB_PORT")
	viper.BindEnv("DBUser", "DB_USER")
	viper.BindEnv("DBPassword", "DB_PASSWORD")
	viper.BindEnv("DBName", "DB_NAME")

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}
