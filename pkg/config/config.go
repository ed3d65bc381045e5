package config

import "os"

type Config struct {
	Port        string
	Env         string
	PostgresUrl string
	JWTSecret   string
	BaseURL     string
	UploadDir   string
	LogPath     string
	LogLevel    string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresUrl: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretjwtkey"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		LogPath:     getEnv("LOG_PATH", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
