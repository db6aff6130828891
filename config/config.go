package config

import (
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Seed    SeedConfig
}

type AppConfig struct {
	Env string
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

type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

// SeedConfig carries the bootstrap passwords for the two default accounts
// inserted when the users table is empty.
type SeedConfig struct {
	PractitionerPassword string
	SecretaryPassword    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env file is fine, the process environment still applies.
		if _, ok := err.(*fs.PathError); !ok {
			return nil, err
		}
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 8 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
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
		Session: SessionConfig{
			Secret: viper.GetString("SESSION_SECRET"),
			Expiry: sessionExpiry,
		},
		Seed: SeedConfig{
			PractitionerPassword: viper.GetString("SEED_PRACTITIONER_PASSWORD"),
			SecretaryPassword:    viper.GetString("SEED_SECRETARY_PASSWORD"),
		},
	}

	return config, nil
}
