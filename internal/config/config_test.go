package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
logger:
  level: debug
questions:
  - title: "What is 2+2?"
    points: 5
    max_selections: 2
    choices:
      - text: "4"
        correct: true
      - text: "5"
    submission: [1, 2]
  - title: "Pick one"
    choices:
      - text: "yes"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "development", cfg.Logger.Env)
	assert.Equal(t, path, cfg.Source)

	require.Len(t, cfg.Questions, 2)
	q := cfg.Questions[0]
	assert.Equal(t, "What is 2+2?", q.Title)
	assert.Equal(t, 5, q.Points)
	assert.Equal(t, 2, q.MaxSelections)
	assert.Equal(t, []ChoiceConfig{{Text: "4", Correct: true}, {Text: "5"}}, q.Choices)
	assert.Equal(t, []int{1, 2}, q.Submission)
}

func TestLoadConfig_QuestionDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	q := cfg.Questions[1]
	assert.Equal(t, 1, q.Points)
	assert.Equal(t, 1, q.MaxSelections)
	assert.Empty(t, q.Submission)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QUIZ_LOGGER_LEVEL", "warn")
	t.Setenv("QUIZ_LOGGER_ENV", "production")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "production", cfg.Logger.Env)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
