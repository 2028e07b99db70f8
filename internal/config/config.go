package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIPort       string        `mapstructure:"API_PORT"`
	Env           string        `mapstructure:"ENV"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	MongoURI      string        `mapstructure:"MONGO_URI"`
	MongoDatabase string        `mapstructure:"MONGO_DATABASE"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	StripeKey     string        `mapstructure:"STRIPE_SECRET_KEY"`
	AllowOrigin   string        `mapstructure:"ALLOW_ORIGIN"`
	StoreTimeout  time.Duration `mapstructure:"STORE_TIMEOUT"`
	TextbeltKey   string        `mapstructure:"TEXTBELT_API_KEY"`
}

var AppConfig Config

// Load reads configuration from a config file if present, otherwise from
// environment variables, and fills AppConfig.
func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("API_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "doctors_portal")
	viper.SetDefault("ALLOW_ORIGIN", "http://localhost:3000")
	viper.SetDefault("STORE_TIMEOUT", 10*time.Second)

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
