package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds runtime settings for ada. Values are layered: built-in
// defaults, then the TOML config file, then ADA_* environment variables.
type Config struct {
	// Model is the chat model name sent to the API.
	Model string `mapstructure:"model"`

	// APIKey authenticates against the OpenAI API. Falls back to the
	// OPENAI_API_KEY environment variable when empty.
	APIKey string `mapstructure:"api_key"`

	// MaxTokens caps the completion length per request.
	MaxTokens int `mapstructure:"max_tokens"`

	// MultiTurnDepth bounds how many tool-call rounds an agent may take
	// before it must answer.
	MultiTurnDepth int `mapstructure:"multi_turn_depth"`

	// EnableDirectCommands lets chat input that looks like a shell command
	// run directly without going through the model.
	EnableDirectCommands bool `mapstructure:"enable_direct_commands"`

	// ShowIntent prints the classified intent before each response.
	ShowIntent bool `mapstructure:"show_intent"`

	// ContextLines is the number of unchanged lines kept around each
	// change when rendering diffs.
	ContextLines int `mapstructure:"context_lines"`
}

// applyDefaults registers the built-in defaults on v.
func applyDefaults(v *viper.Viper) {
	v.SetDefault("model", "gpt-4")
	v.SetDefault("api_key", "")
	v.SetDefault("max_tokens", 4096)
	v.SetDefault("multi_turn_depth", 10)
	v.SetDefault("enable_direct_commands", true)
	v.SetDefault("show_intent", true)
	v.SetDefault("context_lines", 2)
}

// Load reads configuration from the given TOML file, layering defaults and
// ADA_* environment variables. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("ADA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values the rest of the program cannot work with.
func (c *Config) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.MultiTurnDepth <= 0 {
		return fmt.Errorf("multi_turn_depth must be positive, got %d", c.MultiTurnDepth)
	}
	if c.ContextLines < 0 {
		return fmt.Errorf("context_lines must not be negative, got %d", c.ContextLines)
	}
	return nil
}
