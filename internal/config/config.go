package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Logger    LoggerConfig     `mapstructure:"logger"`
	Questions []QuestionConfig `mapstructure:"questions"`

	// Source is the absolute path of the file that was read.
	Source string `mapstructure:"-"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"`
}

// QuestionConfig describes a question to build, plus an optional sample
// submission to grade against it.
type QuestionConfig struct {
	Title         string         `mapstructure:"title"`
	Points        int            `mapstructure:"points"`
	MaxSelections int            `mapstructure:"max_selections"`
	Choices       []ChoiceConfig `mapstructure:"choices"`
	Submission    []int          `mapstructure:"submission"`
}

type ChoiceConfig struct {
	Text    string `mapstructure:"text"`
	Correct bool   `mapstructure:"correct"`
}

const (
	defaultPoints        = 1
	defaultMaxSelections = 1
)

// LoadConfig reads the YAML config at path. An empty path searches for
// config.yaml in the working directory and ./configs.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetEnvPrefix("QUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Unmarshal does not consult AutomaticEnv for keys only set by default.
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Env = v.GetString("logger.env")

	for i := range cfg.Questions {
		q := &cfg.Questions[i]
		if q.Points == 0 {
			q.Points = defaultPoints
		}
		if q.MaxSelections == 0 {
			q.MaxSelections = defaultMaxSelections
		}
	}

	if used := v.ConfigFileUsed(); used != "" {
		if abs, err := filepath.Abs(used); err == nil {
			cfg.Source = abs
		}
	}

	return cfg, nil
}
