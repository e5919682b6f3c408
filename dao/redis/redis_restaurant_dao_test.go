package redis

import (
	"context"
	"encoding/json"
	"testing"

	"jewgo-server/db"
	"jewgo-server/hours"
	"jewgo-server/models"
	"jewgo-server/models/restaurant"
)

func TestRedisRestaurantDAO_UpsertRestaurant_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRestaurantDAO(mockClient)

	testRestaurant := restaurant.Restaurant{
		ID:        "rest123",
		Name:      "Test Deli",
		Latitude:  40.6694,
		Longitude: -73.9422,
	}

	// Act
	err := dao.UpsertRestaurant(testRestaurant)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expectedKey := "restaurants_geo_place_v1:rest123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	var stored restaurant.Restaurant
	if err := json.Unmarshal([]byte(storedValue), &stored); err != nil {
		t.Fatalf("Failed to unmarshal stored restaurant data: %v", err)
	}
	if stored.ID != testRestaurant.ID {
		t.Errorf("Expected ID %s, got %s", testRestaurant.ID, stored.ID)
	}
}

func TestRedisRestaurantDAO_GetNearbyRestaurants_Success(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRestaurantDAO(mockClient)

	for _, r := range []restaurant.Restaurant{
		{ID: "rest1", Name: "Deli One", Latitude: 40.66, Longitude: -73.94},
		{ID: "rest2", Name: "Deli Two", Latitude: 40.67, Longitude: -73.95},
	} {
		if err := dao.UpsertRestaurant(r); err != nil {
			t.Fatalf("UpsertRestaurant failed: %v", err)
		}
	}

	nearby, err := dao.GetNearbyRestaurants(40.66, -73.94, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(nearby) != 2 {
		t.Errorf("Expected 2 restaurants, got %d", len(nearby))
	}
}

func TestRedisRestaurantDAO_GetRestaurant(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRestaurantDAO(mockClient)

	if err := dao.UpsertRestaurant(restaurant.Restaurant{ID: "rest9", Name: "Milk & Honey"}); err != nil {
		t.Fatalf("UpsertRestaurant failed: %v", err)
	}

	got, err := dao.GetRestaurant("rest9")
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}
	if got.Name != "Milk & Honey" {
		t.Errorf("Expected name Milk & Honey, got %s", got.Name)
	}

	if _, err := dao.GetRestaurant("missing"); err == nil {
		t.Error("Expected error for missing restaurant")
	}
}

func TestRedisRestaurantDAO_WeeklyHoursCache(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRestaurantDAO(mockClient)

	entries := []hours.DayScheduleEntry{
		{Day: "Mon", Hours: "9:00 AM–5:00 PM"},
		{Day: "Tue", Hours: "Closed"},
	}
	if err := dao.SetWeeklyHours("rest123", entries); err != nil {
		t.Fatalf("SetWeeklyHours failed: %v", err)
	}

	got, err := dao.GetWeeklyHours("rest123")
	if err != nil {
		t.Fatalf("GetWeeklyHours failed: %v", err)
	}
	if len(got) != 2 || got[0].Hours != "9:00 AM–5:00 PM" {
		t.Errorf("Unexpected cached entries: %+v", got)
	}

	ids, err := dao.ListCachedWeeklyHoursRestaurantIDs()
	if err != nil {
		t.Fatalf("ListCachedWeeklyHoursRestaurantIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "rest123" {
		t.Errorf("Expected [rest123], got %v", ids)
	}

	if err := dao.DeleteWeeklyHours("rest123"); err != nil {
		t.Fatalf("DeleteWeeklyHours failed: %v", err)
	}
	if _, err := dao.GetWeeklyHours("rest123"); err == nil {
		t.Error("Expected error after cache delete")
	}
}

func TestRedisRestaurantDAO_Submissions(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRestaurantDAO(mockClient)

	sub := &models.RestaurantSubmission{
		ID:             "sub-1",
		Name:           "New Place",
		KosherCategory: "dairy",
		Status:         "pending",
	}
	if err := dao.SaveSubmission(sub); err != nil {
		t.Fatalf("SaveSubmission failed: %v", err)
	}

	got, err := dao.GetSubmission("sub-1")
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if got.Name != "New Place" || got.Status != "pending" {
		t.Errorf("Unexpected submission: %+v", got)
	}
}
