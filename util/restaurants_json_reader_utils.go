package util

import (
	"encoding/json"
	"fmt"
	"os"

	"jewgo-server/models"
	"jewgo-server/models/restaurant"
)

// ReadSearchRestaurantsResponseFromJSON loads a SearchRestaurantsResponse from JSON on disk.
func ReadSearchRestaurantsResponseFromJSON(filePath string) (*models.SearchRestaurantsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SearchRestaurantsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchRestaurantsResponse: %w", err)
	}
	return &resp, nil
}

// ReadRestaurantFromJSON loads a single Restaurant from JSON on disk.
func ReadRestaurantFromJSON(filePath string) (*restaurant.Restaurant, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var r restaurant.Restaurant
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Restaurant: %w", err)
	}
	return &r, nil
}

// ReadRestaurantIds loads a slice of restaurant IDs from JSON on disk.
func ReadRestaurantIds(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant IDs: %w", err)
	}
	return ids, nil
}
