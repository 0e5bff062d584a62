package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/courtsim/internal/game/core"
)

// Config holds all configuration for the application
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Court      CourtConfig      `mapstructure:"court"`
	Coach      CoachConfig      `mapstructure:"coach"`
	Scoreboard ScoreboardConfig `mapstructure:"scoreboard"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GameConfig holds roster settings
type GameConfig struct {
	TeamSize int `mapstructure:"team_size"`
}

// CourtConfig holds court dimensions in metres, measured from the centre
type CourtConfig struct {
	HalfWidth  float64 `mapstructure:"half_width"`
	HalfLength float64 `mapstructure:"half_length"`
}

// CoachConfig holds coach settings
type CoachConfig struct {
	DefaultStrategy string `mapstructure:"default_strategy"`
}

// ScoreboardConfig holds scoreboard display names
type ScoreboardConfig struct {
	HomeName string `mapstructure:"home_name"`
	AwayName string `mapstructure:"away_name"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.team_size", 5)

	// FIBA court is 28m x 15m
	v.SetDefault("court.half_width", 14.0)
	v.SetDefault("court.half_length", 7.5)

	v.SetDefault("coach.default_strategy", "offensive")

	v.SetDefault("scoreboard.home_name", "Home")
	v.SetDefault("scoreboard.away_name", "Away")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/courtsim")
	}

	v.SetEnvPrefix("COURTSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults; for the search
		// paths only ConfigFileNotFoundError is tolerated
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded configuration
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}
	Get()

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("environment config %s: %w", envFile, err)
	}

	return nil
}

// Set overrides a single key at runtime and refreshes the typed config.
// The configuration is initialised with defaults if Init has not run.
func Set(key string, value interface{}) error {
	Get()

	v.Set(key, value)
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("applying %s: %w", key, err)
	}
	return nil
}

// ConfigFilePath returns the path of the loaded config file, if any
func ConfigFilePath() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.TeamSize <= 0 {
		return fmt.Errorf("game.team_size: %w", core.ErrInvalidTeamSize)
	}

	if c.Court.HalfWidth <= 0 || c.Court.HalfLength <= 0 {
		return fmt.Errorf("court dimensions must be positive")
	}

	switch strings.ToLower(c.Coach.DefaultStrategy) {
	case "", "none", "offensive", "defensive":
	default:
		return fmt.Errorf("coach.default_strategy %q: %w", c.Coach.DefaultStrategy, core.ErrUnknownStrategy)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
