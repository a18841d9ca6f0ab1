package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (chat transcript store).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisChatDB   int    `mapstructure:"REDIS_CHAT_DB"`

	// Local persistence (bbolt).
	StoragePath string `mapstructure:"STORAGE_PATH"`

	// Assistant pacing, milliseconds.
	ReplyDelayMS    int `mapstructure:"REPLY_DELAY_MS"`
	NavigateDelayMS int `mapstructure:"NAVIGATE_DELAY_MS"`

	// Toast auto-dismiss, milliseconds. Zero disables expiry.
	ToastTTLMS int `mapstructure:"TOAST_TTL_MS"`

	// Chat transcript TTL, minutes.
	ChatContextTTLMin int `mapstructure:"CHAT_CONTEXT_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CHAT_DB", 0)
	viper.SetDefault("STORAGE_PATH", "hotelops.db")
	viper.SetDefault("REPLY_DELAY_MS", 1000)
	viper.SetDefault("NAVIGATE_DELAY_MS", 1000)
	viper.SetDefault("TOAST_TTL_MS", 5000)
	viper.SetDefault("CHAT_CONTEXT_TTL_MIN", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ReplyDelay returns the assistant reply delay as a duration.
func ReplyDelay() time.Duration {
	return time.Duration(AppConfig.ReplyDelayMS) * time.Millisecond
}

// NavigateDelay returns the deferred-navigation delay as a duration.
func NavigateDelay() time.Duration {
	return time.Duration(AppConfig.NavigateDelayMS) * time.Millisecond
}

// ToastTTL returns the toast auto-dismiss delay as a duration.
func ToastTTL() time.Duration {
	return time.Duration(AppConfig.ToastTTLMS) * time.Millisecond
}

// ChatContextTTL returns how long idle chat transcripts are retained.
func ChatContextTTL() time.Duration {
	return time.Duration(AppConfig.ChatContextTTLMin) * time.Minute
}
