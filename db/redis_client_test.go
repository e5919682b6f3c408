package db_test

import (
	"context"
	"encoding/json"
	"testing"

	"jewgo-server/db"
)

func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"GeoRedisClient", db.NewGeoRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			// Act
			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

func TestMockRedisClient_AddLocationWithJSON(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	payload := map[string]string{"name": "Test Deli"}
	err := client.AddLocationWithJSON(client.GetContext(), "geo-key", "member-1", 40.66, -73.94, payload)
	if err != nil {
		t.Fatalf("AddLocationWithJSON failed: %v", err)
	}

	results, err := client.GetLocationsWithinRadius("geo-key", 40.66, -73.94, 5)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(results[0]), &decoded); err != nil {
		t.Fatalf("Failed to unmarshal stored payload: %v", err)
	}
	if decoded["name"] != "Test Deli" {
		t.Errorf("Expected name Test Deli, got %s", decoded["name"])
	}
}

func TestMockRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_ = client.Set("weekly_hours_v1:a", "1")
	_ = client.Set("weekly_hours_v1:b", "2")
	_ = client.Set("other:c", "3")

	keys, err := client.Keys("weekly_hours_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Expected 2 keys, got %d", len(keys))
	}

	if err := client.Del("weekly_hours_v1:a"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("weekly_hours_v1:a"); err == nil {
		t.Error("Expected deleted key to be missing")
	}
}
