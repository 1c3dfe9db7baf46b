package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the process environment as a map
func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		key, value, found := strings.Cut(variable, "=")
		if found {
			environmentVariables[key] = value
		}
	}

	return environmentVariables
}
