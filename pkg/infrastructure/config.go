package infrastructure

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment, optionally seeded
// from a .env file.
type Config struct {
	Port             string
	CommandsDBURL    string
	CommandsSQLite   string
	ActionServiceURL string
	ChromePath       string
	ShutdownTimeout  time.Duration
}

// LoadConfig loads files (default ".env") if present and reads the
// environment. Missing .env files are not an error.
func LoadConfig(files ...string) Config {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: unable to load env file: %v", err)
	}
	return ConfigFromEnv()
}

func ConfigFromEnv() Config {
	return Config{
		Port:             getenv("PORT", "3000"),
		CommandsDBURL:    os.Getenv("COMMANDS_DATABASE_URL"),
		CommandsSQLite:   os.Getenv("COMMANDS_SQLITE_PATH"),
		ActionServiceURL: os.Getenv("ACTION_SERVICE_URL"),
		ChromePath:       os.Getenv("CHROME_PATH"),
		ShutdownTimeout:  getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warning: invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}
