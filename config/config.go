package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries the data file locations for both console programs.
type Config struct {
	DataDir          string
	RoomsFile        string
	ReservationsFile string
	GradesFile       string
}

// Load loads configuration from an optional .env in the working directory and
// from environment variables.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads configuration from the given .env file and environment
// variables. Values from an explicitly passed file win over whatever is
// already in the environment, including variables set to an empty string.
// A missing .env file is not an error.
func LoadWithFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	} else {
		// Optional .env next to the binary.
		_ = godotenv.Load()
	}

	cfg := &Config{DataDir: getEnv("HOTEL_DATA_DIR", ".")}
	cfg.RoomsFile = getEnv("HOTEL_ROOMS_FILE", filepath.Join(cfg.DataDir, "rooms.txt"))
	cfg.ReservationsFile = getEnv("HOTEL_RESERVATIONS_FILE", filepath.Join(cfg.DataDir, "reservations.txt"))
	cfg.GradesFile = getEnv("GRADES_FILE", filepath.Join(cfg.DataDir, "students.csv"))
	return cfg, nil
}

// ApplyDataDir points every file location at dir, overriding whatever the
// environment said. Command-line flags use this so they beat the environment.
func (c *Config) ApplyDataDir(dir string) {
	c.DataDir = dir
	c.RoomsFile = filepath.Join(dir, "rooms.txt")
	c.ReservationsFile = filepath.Join(dir, "reservations.txt")
	c.GradesFile = filepath.Join(dir, "students.csv")
}

// getEnv returns the value of the environment variable if set, otherwise the
// provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}
