package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Defaults for everything except the credential, which has no sane default.
const (
	DefaultServerAddress = ":8080"
	DefaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	DefaultGroqModelID   = "llama-3.1-8b-instant"
	DefaultCatalogDir    = "data"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// Completion Service Configuration
	GroqAPIKey  string `mapstructure:"GROQ_API_KEY"`  // API key for the Groq endpoint
	GroqBaseURL string `mapstructure:"GROQ_BASE_URL"` // OpenAI-compatible base URL
	GroqModelID string `mapstructure:"GROQ_MODEL_ID"` // e.g., "llama-3.1-8b-instant"

	// Catalog Configuration
	CatalogDir string `mapstructure:"CATALOG_DIR"` // Directory holding free-1.json / pro-1.json
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", DefaultServerAddress)
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_BASE_URL", DefaultGroqBaseURL)
	viper.SetDefault("GROQ_MODEL_ID", DefaultGroqModelID)
	viper.SetDefault("CATALOG_DIR", DefaultCatalogDir)

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// A missing key must not crash the process: theme generation requests
	// degrade to a configuration-error result instead.
	if config.GroqAPIKey == "" {
		log.Println("WARN: GROQ_API_KEY is not set. Theme generation will fail until it is configured.")
	} else {
		log.Println("Groq API key loaded successfully.")
	}

	return
}
