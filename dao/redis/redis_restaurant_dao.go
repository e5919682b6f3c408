package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"jewgo-server/db"
	"jewgo-server/hours"
	"jewgo-server/models"
	"jewgo-server/models/restaurant"
)

const RESTAURANTS_GEO_KEY_V1 = "restaurants_geo_v1"
const RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1 = "restaurants_geo_place_v1:%s"

// WEEKLY_HOURS_KEY_FORMAT is used to cache the rendered weekly schedule per
// restaurant.
const WEEKLY_HOURS_KEY_FORMAT = "weekly_hours_v1:%s"

// SUBMISSION_KEY_FORMAT is used to queue pending listing submissions.
const SUBMISSION_KEY_FORMAT = "submission_v1:%s"

// RedisRestaurantDAO handles restaurant operations using Redis.
type RedisRestaurantDAO struct {
	client db.RedisClient
}

// NewRedisRestaurantDAO initializes a RedisRestaurantDAO with the Redis client.
func NewRedisRestaurantDAO(client db.RedisClient) *RedisRestaurantDAO {
	return &RedisRestaurantDAO{client: client}
}

// UpsertRestaurant stores the restaurant as a geolocation member with the
// restaurant's JSON data.
func (dao *RedisRestaurantDAO) UpsertRestaurant(r restaurant.Restaurant) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, r.ID)
	return dao.client.AddLocationWithJSON(ctx, RESTAURANTS_GEO_KEY_V1, memberKey, r.Latitude, r.Longitude, r)
}

// GetNearbyRestaurants retrieves restaurants within a given radius (km).
func (dao *RedisRestaurantDAO) GetNearbyRestaurants(lat, lon, radius float64) ([]restaurant.Restaurant, error) {
	restaurantsJSON, err := dao.client.GetLocationsWithinRadius(RESTAURANTS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisRestaurantDAO] failed to get restaurants: %v", err)
	}

	restaurants := make([]restaurant.Restaurant, len(restaurantsJSON))
	for i, rJSON := range restaurantsJSON {
		if err := json.Unmarshal([]byte(rJSON), &restaurants[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal restaurant JSON: %v", err)
		}
	}
	return restaurants, nil
}

// GetRestaurant retrieves a single cached restaurant by its ID.
func (dao *RedisRestaurantDAO) GetRestaurant(restaurantID string) (*restaurant.Restaurant, error) {
	key := fmt.Sprintf(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, restaurantID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant from redis: %w", err)
	}
	var r restaurant.Restaurant
	if err := json.Unmarshal([]byte(str), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant JSON: %w", err)
	}
	return &r, nil
}

// ListAllRestaurantIDs returns all restaurant IDs present in the geo index.
func (dao *RedisRestaurantDAO) ListAllRestaurantIDs() ([]string, error) {
	pattern := fmt.Sprintf(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetWeeklyHours caches the rendered weekly schedule for a restaurant.
func (dao *RedisRestaurantDAO) SetWeeklyHours(restaurantID string, entries []hours.DayScheduleEntry) error {
	key := fmt.Sprintf(WEEKLY_HOURS_KEY_FORMAT, restaurantID)
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly hours for restaurant %s: %w", restaurantID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set weekly hours in redis: %w", err)
	}
	return nil
}

// GetWeeklyHours retrieves the cached weekly schedule for a restaurant.
func (dao *RedisRestaurantDAO) GetWeeklyHours(restaurantID string) ([]hours.DayScheduleEntry, error) {
	key := fmt.Sprintf(WEEKLY_HOURS_KEY_FORMAT, restaurantID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly hours from redis: %w", err)
	}
	var entries []hours.DayScheduleEntry
	if err := json.Unmarshal([]byte(str), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weekly hours JSON: %w", err)
	}
	return entries, nil
}

// DeleteWeeklyHours removes a stale weekly schedule cache entry.
func (dao *RedisRestaurantDAO) DeleteWeeklyHours(restaurantID string) error {
	key := fmt.Sprintf(WEEKLY_HOURS_KEY_FORMAT, restaurantID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete weekly hours key %s: %w", key, err)
	}
	return nil
}

// ListCachedWeeklyHoursRestaurantIDs returns the restaurant IDs for all
// cached weekly schedules.
func (dao *RedisRestaurantDAO) ListCachedWeeklyHoursRestaurantIDs() ([]string, error) {
	pattern := fmt.Sprintf(WEEKLY_HOURS_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly hours keys: %w", err)
	}

	prefix := fmt.Sprintf(WEEKLY_HOURS_KEY_FORMAT, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SaveSubmission queues a pending listing submission.
func (dao *RedisRestaurantDAO) SaveSubmission(sub *models.RestaurantSubmission) error {
	key := fmt.Sprintf(SUBMISSION_KEY_FORMAT, sub.ID)
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission %s: %w", sub.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set submission in redis: %w", err)
	}
	return nil
}

// GetSubmission retrieves a queued submission by its ID.
func (dao *RedisRestaurantDAO) GetSubmission(submissionID string) (*models.RestaurantSubmission, error) {
	key := fmt.Sprintf(SUBMISSION_KEY_FORMAT, submissionID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission from redis: %w", err)
	}
	var sub models.RestaurantSubmission
	if err := json.Unmarshal([]byte(str), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission JSON: %w", err)
	}
	return &sub, nil
}
