package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries everything the client needs to know about its
// environment. Values come from the process env, with a .env file in
// the working directory as a convenience for development.
type Config struct {
	// APIURL is the backend base URL, e.g. http://localhost:8080/api.
	APIURL string
	// DataDir holds the local sqlite store and log file.
	DataDir string
	// LogPath is the JSON log file location.
	LogPath string
}

const (
	defaultAPIURL = "http://localhost:8080/api"
	dataDirName   = ".lancer"
)

// Load reads configuration from the environment. A missing .env file
// is fine; explicit env vars always win over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := os.Getenv("LANCER_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, dataDirName)
	}

	apiURL := os.Getenv("LANCER_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Config{
		APIURL:  apiURL,
		DataDir: dataDir,
		LogPath: filepath.Join(dataDir, "lancer.log"),
	}, nil
}

// StorePath is the sqlite file holding the persisted session slot.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "lancer.db")
}
