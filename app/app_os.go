package app

import (
	"os"
)

func MustDir() string {
	dir, err := Dir()

	if err != nil {
		panic(err)
	}

	return dir
}

// Dir is where configuration and .env files are looked up.
func Dir() (string, error) {
	if dir := os.Getenv("FOAAS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	return os.Getwd()
}
