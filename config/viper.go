package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	keyNormalTarget   = "targets.normal"
	keyReducedTarget  = "targets.reduced"
	keyTwentyFourHour = "settings.24hr_clock"
	keyNotify         = "settings.notify"
	keyDarkTheme      = "settings.dark_theme"
	keySessionCmd     = "settings.cmd"
)

const (
	defaultNormalTarget  = 8 * time.Hour
	defaultReducedTarget = 7*time.Hour + 30*time.Minute
)

// loadFromFile reads the config file into c, creating the file with default
// values when it does not exist yet.
func loadFromFile(c *App, configPath string) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault(keyNormalTarget, defaultNormalTarget.String())
	v.SetDefault(keyReducedTarget, defaultReducedTarget.String())
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keySessionCmd, "")

	err := v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}
	}

	c.NormalTarget = parseTarget(
		v.GetString(keyNormalTarget),
		defaultNormalTarget,
	)
	c.ReducedTarget = parseTarget(
		v.GetString(keyReducedTarget),
		defaultReducedTarget,
	)
	c.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Notify = v.GetBool(keyNotify)
	c.DarkTheme = v.GetBool(keyDarkTheme)
	c.SessionCmd = v.GetString(keySessionCmd)

	return nil
}

// parseTarget parses a duration string, falling back to the built-in default
// for malformed or non-positive values.
func parseTarget(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}
