// pkg/core/dotenv.go
package core

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvLookup returns a lookup that consults the process environment first
// and then the dotenv file at path. The process environment is not modified.
func EnvLookup(path string) (func(string) (string, bool), error) {
	if path == "" {
		return os.LookupEnv, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}
