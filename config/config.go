package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Directory DirectoryConfig
	Booking   BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DirectoryConfig struct {
	// FetchDelay is the simulated latency of the upstream directory fetch.
	FetchDelay time.Duration
}

type BookingConfig struct {
	// CommitLatency is the simulated latency of committing a booking.
	CommitLatency time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; environment variables and defaults still apply.
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")

	fetchDelay, err := time.ParseDuration(viper.GetString("DIRECTORY_FETCH_DELAY"))
	if err != nil {
		fetchDelay = 500 * time.Millisecond
	}

	commitLatency, err := time.ParseDuration(viper.GetString("BOOKING_COMMIT_LATENCY"))
	if err != nil {
		commitLatency = time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Directory: DirectoryConfig{
			FetchDelay: fetchDelay,
		},
		Booking: BookingConfig{
			CommitLatency: commitLatency,
		},
	}

	return config, nil
}
