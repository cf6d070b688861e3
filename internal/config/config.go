package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	APP_NAME = "olang"

	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = APP_NAME + "/" + CONFIG_FILE_NAME

	HISTORY_FILE_NAME    = "history"
	HISTORY_FILE_RELPATH = APP_NAME + "/" + HISTORY_FILE_NAME

	DEFAULT_PROMPT              = "> "
	DEFAULT_CONTINUATION_PROMPT = ". "
	DEFAULT_LOG_LEVEL           = "warn"

	SCRIPT_FILE_EXTENSION = ".olang"
)

var (
	USER_HOME             string
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool

	// set if SHOULD_COLORIZE
	DARK_BACKGROUND = true
)

func init() {
	targetSpecificInit()
}

// readColorEnv reads the environment variables that control colorization.
func readColorEnv() {
	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = isTruthyEnvValue(s)
	}

	TRUECOLOR_COLORTERM = os.Getenv("COLORTERM") == "truecolor"

	if s, ok := os.LookupEnv("NO_COLOR"); ok {
		NO_COLOR = isTruthyEnvValue(s)
	}

	TERM_256COLOR_CAPABLE = strings.Contains(os.Getenv("TERM"), "256color")

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE)
}

func isTruthyEnvValue(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}

// ConfigFilePath returns the path of the user configuration file if it exists.
func ConfigFilePath() (path string, found bool) {
	path, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
	if err != nil {
		return "", false
	}
	return path, true
}

// DefaultHistoryFilePath returns the path of the REPL history file in the data directory,
// the parent directory is created if necessary.
func DefaultHistoryFilePath() (string, error) {
	return xdg.DataFile(HISTORY_FILE_RELPATH)
}

// ExpandHome replaces a leading ~/ with the home directory of the user.
func ExpandHome(path string) string {
	if USER_HOME != "" && strings.HasPrefix(path, "~/") {
		return filepath.Join(USER_HOME, path[2:])
	}
	return path
}
