package config

import "os"

// Config holds all runtime configuration, sourced from the environment
type Config struct {
	MongoURI    string `json:"-"` // Never serialize
	MongoDBName string `json:"mongoDbName"`
	RedisAddr   string `json:"redisAddr"`
	Port        string `json:"port"`
	CatalogPath string `json:"catalogPath"`
	JWTSecret   string `json:"-"`
	AdminEmail  string `json:"adminEmail"`
}

// Load reads the configuration from environment variables, falling back to
// local-dev defaults for everything except secrets.
func Load() *Config {
	return &Config{
		MongoURI:    getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnvOrDefault("MONGO_DB", "sbindexdb"),
		RedisAddr:   stripRedisScheme(getEnvOrDefault("REDIS_URI", "localhost:6379")),
		Port:        getEnvOrDefault("PORT", "8080"),
		CatalogPath: getEnvOrDefault("CATALOG_PATH", "data/survey_items.csv"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminEmail:  getEnvOrDefault("ADMIN_EMAIL", "admin@sbindex.local"),
	}
}

// HasJWTSecret returns true if a signing secret is configured
func (c *Config) HasJWTSecret() bool {
	return c.JWTSecret != ""
}

func stripRedisScheme(addr string) string {
	if len(addr) > 8 && addr[:8] == "redis://" {
		return addr[8:]
	}
	return addr
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
