package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret or connection string can come from.
type Source struct {
	// Name is used in error messages to give more context about the secret.
	Name string
	// Value is an inline value provided via configuration or flags.
	Value string
	// File points to a file containing the value. It takes precedence over
	// Env and Value.
	File string
	// Env names an environment variable consulted when File is unset. It
	// takes precedence over Value.
	Env string
	// Optional makes a missing value resolve to "" instead of an error.
	Optional bool
}

// Load resolves src in File, Env, Value order and returns the trimmed value.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}

		value := strings.TrimSpace(string(data))
		if value == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return value, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if value := strings.TrimSpace(os.Getenv(env)); value != "" {
			return value, nil
		}
	}

	value := strings.TrimSpace(src.Value)
	if value == "" && !src.Optional {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return value, nil
}
