//go:build !unix

package config

import "os"

const (
	UNIX = false
)

func targetSpecificInit() {
	if HOME, err := os.UserHomeDir(); err == nil {
		USER_HOME = HOME
	}

	readColorEnv()
}
