package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Mapstructure tags map
// environment variables and config file keys.
type Config struct {
	// Server configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	CORSOrigins   string `mapstructure:"CORS_ALLOW_ORIGINS"`

	// Model provider configuration
	OpenAIKey        string `mapstructure:"OPENAI_API_KEY"`
	AnthropicKey     string `mapstructure:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string `mapstructure:"ANTHROPIC_BASE_URL"`
	GeminiKey        string `mapstructure:"GEMINI_API_KEY"`
	GeminiBaseURL    string `mapstructure:"GEMINI_BASE_URL"`
	DefaultModel     string `mapstructure:"DEFAULT_MODEL"` // public model identifier

	// Generated project export
	ProjectsDir string `mapstructure:"GENERATED_PROJECTS_DIR"`

	// Object storage configuration
	AWSAccessKey string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	AWSRegion    string `mapstructure:"AWS_REGION"`
	S3Bucket     string `mapstructure:"S3_BUCKET_NAME"`
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Defaults double as the key registry so AutomaticEnv can resolve them.
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_BASE_URL", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "")
	viper.SetDefault("DEFAULT_MODEL", "claude-sonnet-4")
	viper.SetDefault("GENERATED_PROJECTS_DIR", "generated_projects")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET_NAME", "codeweaver-uploads")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.AnthropicKey == "" && config.OpenAIKey == "" && config.GeminiKey == "" {
		log.Println("WARN: no provider API key is set; every generation will degrade to the fallback library.")
	}

	return
}
