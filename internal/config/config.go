package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/todotui/internal/todo"
)

// Config holds application configuration.
type Config struct {
	List ListConfig
	UI   UIConfig
	Todo TodoConfig
	Log  LogConfig
}

// ListConfig holds settings for the todo list.
type ListConfig struct {
	Title string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ModalWidth  int  `mapstructure:"modal_width"`
	ModalHeight int  `mapstructure:"modal_height"`
	AltScreen   bool `mapstructure:"alt_screen"`
	Mouse       bool
}

// TodoConfig holds behaviour settings for new todos.
type TodoConfig struct {
	SimilarDistance int    `mapstructure:"similar_distance"`
	DefaultStatus   string `mapstructure:"default_status"`
}

// LogConfig holds logging settings. An empty file discards log output.
type LogConfig struct {
	File string
}

// Load reads configuration from file and env. Env var overrides use prefix TODOTUI_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("list.title", "Todos")
	v.SetDefault("ui.modal_width", 60)
	v.SetDefault("ui.modal_height", 25)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", false)
	v.SetDefault("todo.similar_distance", 2)
	v.SetDefault("todo.default_status", "pending")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TODOTUI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "todotui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TODOTUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly named file must exist and parse.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges that viper cannot express.
func (c Config) Validate() error {
	if c.UI.ModalWidth < 1 || c.UI.ModalWidth > 100 {
		return fmt.Errorf("ui.modal_width must be within 1..100, got %d", c.UI.ModalWidth)
	}
	if c.UI.ModalHeight < 1 || c.UI.ModalHeight > 100 {
		return fmt.Errorf("ui.modal_height must be within 1..100, got %d", c.UI.ModalHeight)
	}
	if c.Todo.SimilarDistance < 0 {
		return fmt.Errorf("todo.similar_distance must not be negative, got %d", c.Todo.SimilarDistance)
	}
	if _, err := todo.ParseStatus(c.Todo.DefaultStatus); err != nil {
		return fmt.Errorf("todo.default_status: %w", err)
	}
	return nil
}
