package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig gathers everything the server reads from the process
// environment at startup.
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabasePath   string
	SecretKey      string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	Timezone       string
}

// Load reads the configuration from environment variables, providing safe
// defaults for everything except production secrets.
func Load() AppConfig {
	port := getEnv("PORT", "8080")

	listenAddr := getEnv("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	secretKey := getEnv("SECRET_KEY", "unsafe-secret")
	jwtSecretKey := getEnv("JWT_SECRET_KEY", secretKey)

	accessMinutes := getEnvInt("JWT_ACCESS_TOKEN_LIFETIME_MINUTES", 60)
	if accessMinutes < 1 {
		accessMinutes = 60
	}

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		DatabasePath:   getEnv("DB_PATH", "data/ritmo.db"),
		SecretKey:      secretKey,
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessMinutes) * time.Minute,
		Timezone:       getEnv("TZ", "UTC"),
	}
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
