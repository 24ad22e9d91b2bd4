// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

const Version = "v1.0.0"

var (
	configDir      = "studylog"
	configFileName = "config.yml"
	dbFileName     = "studylog.db"
	statusFileName = "status.json"
	logFileName    = "studylog.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
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

// InitializePaths resolves the config, database, status, and log file
// locations. Setting STUDYLOG_ENV suffixes each file name so that
// development or testing runs cannot clobber real data.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("STUDYLOG_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("studylog_%s.db", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		logFileName = fmt.Sprintf("studylog_%s.log", env)
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
