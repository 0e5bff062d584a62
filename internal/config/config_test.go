package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/courtsim/internal/game/core"
)

func reset() {
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  team_size: 2
court:
  half_width: 10
  half_length: 5
coach:
  default_strategy: defensive
scoreboard:
  home_name: Lions
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	reset()

	err = Init(configFile)
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 2, c.Game.TeamSize)
	assert.Equal(t, 10.0, c.Court.HalfWidth)
	assert.Equal(t, 5.0, c.Court.HalfLength)
	assert.Equal(t, "defensive", c.Coach.DefaultStrategy)
	assert.Equal(t, "Lions", c.Scoreboard.HomeName)
	// Untouched keys keep their defaults
	assert.Equal(t, "Away", c.Scoreboard.AwayName)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestInitWithDefaults(t *testing.T) {
	reset()

	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 5, c.Game.TeamSize)
	assert.Equal(t, 14.0, c.Court.HalfWidth)
	assert.Equal(t, 7.5, c.Court.HalfLength)
	assert.Equal(t, "offensive", c.Coach.DefaultStrategy)
	assert.Equal(t, "Home", c.Scoreboard.HomeName)
	assert.Equal(t, "console", c.Logging.Format)
}

func TestGetInitializesLazily(t *testing.T) {
	reset()

	c := Get()
	require.NotNil(t, c)
	assert.Same(t, c, Get())
}

func TestEnvironmentVariables(t *testing.T) {
	reset()

	t.Setenv("COURTSIM_GAME_TEAM_SIZE", "3")
	t.Setenv("COURTSIM_LOGGING_LEVEL", "debug")

	err := Init("")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 3, c.Game.TeamSize)
	assert.Equal(t, "debug", c.Logging.Level)
}

func TestInitRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("game:\n  team_size: 0\n"), 0644))

	reset()

	err := Init(configFile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidTeamSize))
}

func TestSet(t *testing.T) {
	reset()

	err := Init("")
	require.NoError(t, err)

	require.NoError(t, Set("game.team_size", 4))
	require.NoError(t, Set("court.half_width", 20.0))

	c := Get()
	assert.Equal(t, 4, c.Game.TeamSize)
	assert.Equal(t, 20.0, c.Court.HalfWidth)
}

func TestSetBeforeInit(t *testing.T) {
	reset()

	require.NoError(t, Set("game.team_size", 3))

	c := Get()
	assert.Equal(t, 3, c.Game.TeamSize)
	// Everything else still comes from the defaults
	assert.Equal(t, 14.0, c.Court.HalfWidth)
}

func TestSetRejectsUndecodableValue(t *testing.T) {
	reset()
	require.NoError(t, Init(""))

	err := Set("game.team_size", "five")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.team_size")
}

func TestLoadEnvironmentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	baseConfig := filepath.Join(tmpDir, "config.yaml")
	baseContent := `
game:
  team_size: 5
coach:
  default_strategy: offensive
`
	require.NoError(t, os.WriteFile(baseConfig, []byte(baseContent), 0644))

	envConfig := filepath.Join(tmpDir, "config.practice.yaml")
	envContent := `
game:
  team_size: 3
logging:
  level: "warn"
`
	require.NoError(t, os.WriteFile(envConfig, []byte(envContent), 0644))

	oldWd, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	defer func() { _ = os.Chdir(oldWd) }()

	reset()

	require.NoError(t, Init(baseConfig))
	require.NoError(t, LoadEnvironmentConfig("practice"))

	c := Get()
	assert.Equal(t, 3, c.Game.TeamSize)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.Equal(t, "offensive", c.Coach.DefaultStrategy)
}

func TestLoadEnvironmentConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, "config.broken.yaml"),
		[]byte("coach:\n  default_strategy: zone\n"), 0644))

	oldWd, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	defer func() { _ = os.Chdir(oldWd) }()

	reset()
	require.NoError(t, Init(""))

	assert.NoError(t, LoadEnvironmentConfig(""))
	assert.Error(t, LoadEnvironmentConfig("missing"))

	err := LoadEnvironmentConfig("broken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownStrategy))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game:    GameConfig{TeamSize: 5},
			Court:   CourtConfig{HalfWidth: 14, HalfLength: 7.5},
			Coach:   CoachConfig{DefaultStrategy: "offensive"},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"NoStrategy", func(c *Config) { c.Coach.DefaultStrategy = "" }, false},
		{"MixedCaseStrategy", func(c *Config) { c.Coach.DefaultStrategy = "Defensive" }, false},
		{"ZeroTeamSize", func(c *Config) { c.Game.TeamSize = 0 }, true},
		{"NegativeCourt", func(c *Config) { c.Court.HalfWidth = -1 }, true},
		{"UnknownStrategy", func(c *Config) { c.Coach.DefaultStrategy = "zone" }, true},
		{"BadLevel", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"BadFormat", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
