package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is assembled once at process start and passed by reference into
// every component. No component reads environment state directly.
type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type AuthConfig struct {
	BcryptCost int
}

// defaultBcryptCost is the fixed fallback when BCRYPT_COST is unset. It is
// resolved here and nowhere else, so hashes are never produced with a cost
// that differs from what configuration reports.
const defaultBcryptCost = 10

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	expiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = 1 * time.Hour
	}

	bcryptCost := viper.GetInt("BCRYPT_COST")
	if bcryptCost == 0 {
		bcryptCost = defaultBcryptCost
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		Auth: AuthConfig{
			BcryptCost: bcryptCost,
		},
	}

	return config, nil
}
