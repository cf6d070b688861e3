//go:build unix

package config

import (
	"os"

	"github.com/muesli/termenv"
)

const (
	UNIX = true
)

func targetSpecificInit() {
	// HOME

	HOME, err := os.UserHomeDir()
	if err == nil {
		if HOME[len(HOME)-1] != '/' {
			HOME += "/"
		}
		USER_HOME = HOME
	}

	readColorEnv()

	if SHOULD_COLORIZE {
		DARK_BACKGROUND = termenv.HasDarkBackground()
	}
}
