package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server
const SERVER_ADDRESS = ":8080"

// Restaurants refresher config
const RESTAURANTS_REFRESHER_SCHEDULE_MINUTES = 60

// JewGo backend API
const JEWGO_BACKEND_ENDPOINT_BASE_V1 = "https://api.jewgo.app/api/v1"
const JEWGO_BACKEND_API_KEY_ENV = "JEWGO_BACKEND_API_KEY"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_RESTAURANTS_RESPONSE_RESOURCE = "search_restaurants_response.json"
const RESTAURANT_STATIC_RESOURCE = "restaurant_static.json"
const RESTAURANT_IDS_RESOURCE = "static_restaurant_ids.json"

// RedisAddress returns the Redis address, honoring the REDIS_ADDR override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// BackendAPIKey reads the backend key from the environment; empty means the
// backend is called unauthenticated.
func BackendAPIKey() string {
	return os.Getenv(JEWGO_BACKEND_API_KEY_ENV)
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
