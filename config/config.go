package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nutrikit/backend/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server Server
	USDA   USDA
	OpenAI OpenAI
	Lookup Lookup
}

// Server holds server-related configuration
type Server struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// USDA holds USDA FoodData Central API configuration
type USDA struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenAI holds matching backend configuration. A missing API key is not an
// error; it disables generative matching in favor of the first-candidate
// fallback.
type OpenAI struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Lookup holds food-nutrition pipeline configuration
type Lookup struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxConcurrent int           `mapstructure:"max_concurrent"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nutrikit/")

	// Environment variable settings
	v.SetEnvPrefix("NUTRIKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// USDA defaults; api_key is registered empty so the env override is
	// visible to Unmarshal
	v.SetDefault("usda.api_key", "")
	v.SetDefault("usda.base_url", "https://api.nal.usda.gov/fdc")

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("openai.model", "gpt-4.1-nano")

	// Lookup defaults
	v.SetDefault("lookup.timeout", "60s")
	v.SetDefault("lookup.max_concurrent", 4)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.USDA.APIKey == "" {
		return fmt.Errorf("%w: USDA API key is required (set NUTRIKIT_USDA_API_KEY)", domain.ErrMissingAPIKey)
	}

	if config.Lookup.Timeout <= 0 {
		return fmt.Errorf("lookup timeout must be positive, got: %s", config.Lookup.Timeout)
	}

	if config.Lookup.MaxConcurrent < 1 {
		return fmt.Errorf("lookup max_concurrent must be at least 1, got: %d", config.Lookup.MaxConcurrent)
	}

	return nil
}
