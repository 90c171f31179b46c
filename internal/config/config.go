// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. The Mongo connection string is the only hard
// requirement; everything else has a sensible default.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	MongoURI      string // connection string for the document store
	MongoDB       string // database name holding the movies/registration collections
	SessionTTLMin int    // session lifetime in minutes
	RabbitURL     string // AMQP broker URL (optional, empty disables events)
}

// Load reads configuration from the environment. MONGO_URI is required;
// a missing value causes the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnv("APP_PORT", "8000"),
		MongoURI:      must("MONGO_URI"),
		MongoDB:       getEnv("MONGO_DB", "moviecatalog"),
		SessionTTLMin: getEnvInt("SESSION_TTL_MIN", 60),
		RabbitURL:     os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
