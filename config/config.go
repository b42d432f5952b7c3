package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	// APIBaseURL is the base URL all portal endpoints are resolved against.
	APIBaseURL string
	// AssetBaseURL serves uploaded images. The backend exposes them on the
	// same host as the API but without the /api path segment.
	AssetBaseURL   string
	RequestTimeout time.Duration
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	APIBaseURL = strings.TrimRight(getEnv("API_URL", "http://localhost:5000/api"), "/")
	AssetBaseURL = DeriveAssetBase(APIBaseURL)

	seconds, err := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "30"))
	if err != nil || seconds <= 0 {
		seconds = 30
	}
	RequestTimeout = time.Duration(seconds) * time.Second
}

// DeriveAssetBase strips a trailing /api segment from the API base URL.
func DeriveAssetBase(apiURL string) string {
	return strings.TrimSuffix(strings.TrimRight(apiURL, "/"), "/api")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
