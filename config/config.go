// Package config resolves application paths and loads the program
// configuration from the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

const Version = "v1.0.0"

// App holds all configuration settings read from the config file. The
// reduced target applies while ramadan mode is enabled in the persisted
// settings.
type App struct {
	NormalTarget   time.Duration
	ReducedTarget  time.Duration
	TwentyFourHour bool
	Notify         bool
	DarkTheme      bool
	SessionCmd     string
}

// Target returns the daily work target selected by the ramadan-mode flag.
func (c *App) Target(ramadanMode bool) time.Duration {
	if ramadanMode {
		return c.ReducedTarget
	}

	return c.NormalTarget
}

var (
	configDir      = "otc"
	configFileName = "config.yml"
	dbFileName     = "otc.db"
	statusFileName = "status.json"
	logFileName    = "otc.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config and data file locations through XDG.
// An OTC_ENV value suffixes every file name so test environments never touch
// real data.
func InitializePaths() {
	otcEnv := strings.TrimSpace(os.Getenv("OTC_ENV"))
	if otcEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", otcEnv)
		dbFileName = fmt.Sprintf("otc_%s.db", otcEnv)
		statusFileName = fmt.Sprintf("status_%s.json", otcEnv)
		logFileName = fmt.Sprintf("otc_%s.log", otcEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New loads the configuration, writing a default config file on first run.
func New() (*App, error) {
	cfg := &App{}

	if err := loadFromFile(cfg, configFilePath); err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}

	return cfg, nil
}
