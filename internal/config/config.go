package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the server. It is loaded once
// in main and injected into the components that need it.
type Config struct {
	Port              string
	MongoURI          string
	DBUser            string
	DBPass            string
	DBCluster         string
	DBName            string
	AccessTokenSecret string
	AllowedOrigins    []string
}

// Load reads configuration from the environment. A .env file is loaded first
// when present so local development works without exported variables.
func Load() (Config, error) {
	// .env is optional; in deployed environments everything comes from
	// real environment variables
	_ = godotenv.Load()

	cfg := Config{
		Port:              getenv("PORT", "3000"),
		MongoURI:          os.Getenv("MONGO_URI"),
		DBUser:            os.Getenv("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBCluster:         os.Getenv("DB_CLUSTER"),
		DBName:            getenv("DB_NAME", "autobid"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		AllowedOrigins:    splitOrigins(getenv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")),
	}

	if cfg.AccessTokenSecret == "" {
		return Config{}, fmt.Errorf("config: ACCESS_TOKEN_SECRET is required")
	}
	if cfg.MongoURI == "" && (cfg.DBUser == "" || cfg.DBPass == "" || cfg.DBCluster == "") {
		return Config{}, fmt.Errorf("config: either MONGO_URI or DB_USER/DB_PASS/DB_CLUSTER must be set")
	}

	return cfg, nil
}

// DatabaseURI returns the Mongo connection string, assembling it from the
// user/password/cluster secrets unless a full URI override is configured.
func (c Config) DatabaseURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBCluster)
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
