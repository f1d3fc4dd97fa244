package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment. Flags on the commands
// may override individual fields after loading.
type Config struct {
	// APIBaseURL is the backend origin the client talks to.
	APIBaseURL string
	// ListenAddr is where the dev backend serves the API.
	ListenAddr string
	// MetricsAddr is where the dev backend exposes /metrics.
	MetricsAddr string
	// DBPath is the sqlite file backing the dev backend.
	DBPath string
	// LogFile receives client logs; the TUI owns stdout so logs go to a file.
	LogFile string
	LogLevel string
}

const defaultBaseURL = "http://localhost:8080"

// LoadConfig loads environment variables from a .env file if present and
// returns the resulting configuration with defaults applied.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		APIBaseURL:  getEnv("API_BASE_URL", defaultBaseURL),
		ListenAddr:  getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		DBPath:      getEnv("DB_PATH", "fitness.db"),
		LogFile:     getEnv("LOG_FILE", "fitness-app.log"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
