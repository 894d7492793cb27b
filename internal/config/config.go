package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`

	CohereAPIKey string `mapstructure:"COHERE_API_KEY"`
	CohereAPIURL string `mapstructure:"COHERE_API_URL"`

	RapidAPIKey string `mapstructure:"RAPIDAPI_KEY"`
	NewsAPIKey  string `mapstructure:"NEWS_API_KEY"`

	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         string `mapstructure:"SMTP_PORT"`
	SMTPUser         string `mapstructure:"SMTP_USER"`
	SMTPPass         string `mapstructure:"SMTP_PASS"`
	ContactSender    string `mapstructure:"CONTACT_SENDER"`
	ContactRecipient string `mapstructure:"CONTACT_RECIPIENT"`

	ClientURL string `mapstructure:"CLIENT_URL"`

	// CascadeUserData extends user deletion to progress logs, calendar
	// entries and chat history. Workout and meal plans are always cascaded.
	CascadeUserData bool `mapstructure:"CASCADE_USER_DATA"`
}

var appConfig *Config

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("COHERE_API_URL", "https://api.cohere.ai/v1/generate")
	viper.SetDefault("SMTP_HOST", "smtp.mailtrap.io")
	viper.SetDefault("SMTP_PORT", "2525")
	viper.SetDefault("CASCADE_USER_DATA", false)

	// Bind environment variables
	for _, key := range []string{
		"PORT",
		"GIN_MODE",
		"FIREBASE_PROJECT_ID",
		"GOOGLE_APPLICATION_CREDENTIALS",
		"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
		"COHERE_API_KEY",
		"COHERE_API_URL",
		"RAPIDAPI_KEY",
		"NEWS_API_KEY",
		"SMTP_HOST",
		"SMTP_PORT",
		"SMTP_USER",
		"SMTP_PASS",
		"CONTACT_SENDER",
		"CONTACT_RECIPIENT",
		"CLIENT_URL",
		"CASCADE_USER_DATA",
	} {
		viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// Validate required fields
	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if cfg.CohereAPIKey == "" {
		return nil, errors.New("COHERE_API_KEY is required")
	}

	appConfig = &cfg
	return appConfig, nil
}

// GetConfig returns the loaded application configuration.
// It panics if LoadConfig has not been called successfully.
func GetConfig() *Config {
	if appConfig == nil {
		panic("config not loaded; call LoadConfig first")
	}
	return appConfig
}
