package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL     string
	PoolMax int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional in production; environment variables win.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(*viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return nil, err
		}
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_POOL_MAX", 20)
	viper.SetDefault("AUTH_JWT_TTL_SECONDS", 86400)

	var origins []string
	if raw := viper.GetString("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			URL:     viper.GetString("DATABASE_URL"),
			PoolMax: viper.GetInt("DATABASE_POOL_MAX"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("AUTH_JWT_SECRET"),
			TTL:    time.Duration(viper.GetInt("AUTH_JWT_TTL_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: origins,
		},
	}

	return config, nil
}
