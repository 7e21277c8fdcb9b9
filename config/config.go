package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type AuthConfig struct {
	JWTSecret string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; missing files are not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "cafesync")
	viper.SetDefault("JWT_SECRET", "secretkey")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
		},
		Mongo: MongoConfig{
			URI:    viper.GetString("MONGO_URI"),
			DBName: viper.GetString("DB_NAME"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
