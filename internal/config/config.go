package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/mubaraka-dev/ghennysoft-immo/internal/utils"
)

const AppName = "ghennysoft-immo"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Database
	DBUrl string

	// Auth. Tokens are minted by the identity provider; this service only
	// verifies them.
	RSAPublicKey *rsa.PublicKey

	// Scheduler
	RentCronSpec string
}

// LoadConfig reads the environment (optionally seeded from a .env file) and
// fails fast on anything missing. A service with half a config is worse
// than one that refuses to start.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found; relying on process environment")
	}

	cfg := &Config{
		AppName:      AppName,
		AppPort:      requireEnv("APP_PORT"),
		AppUrl:       requireEnv("APP_URL"),
		DBUrl:        requireEnv("DATABASE_URL"),
		RentCronSpec: envOrDefault("RENT_CRON_SPEC", "15 0 * * *"),
	}

	pubB64 := requireEnv("JWT_RSA_PUBLIC_KEY_BASE64")
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.Fatal("JWT_RSA_PUBLIC_KEY_BASE64 is not valid base64:", err)
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.Fatal("Failed to parse JWT RSA public key:", err)
	}
	cfg.RSAPublicKey = pubKey

	return cfg
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var missing", key)
	}
	return v
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
