package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"jewgo-server/api/backend"
	"jewgo-server/dao/redis"
	"jewgo-server/hours"
	"jewgo-server/models"
	"jewgo-server/models/restaurant"
)

// ErrInvalidSubmission marks submissions rejected by validation.
var ErrInvalidSubmission = errors.New("invalid submission")

// RestaurantService coordinates lookups between the Redis cache and the
// backend API.
type RestaurantService struct {
	restaurantDao *redis.RedisRestaurantDAO
	backendAPI    backend.JewGoBackendAPI
	validate      *validator.Validate
}

// NewRestaurantService constructs a RestaurantService with its dependencies.
func NewRestaurantService(
	restaurantDao *redis.RedisRestaurantDAO,
	backendAPI backend.JewGoBackendAPI) *RestaurantService {

	return &RestaurantService{
		restaurantDao: restaurantDao,
		backendAPI:    backendAPI,
		validate:      validator.New(),
	}
}

// GetRestaurantsNearby loads the geo-indexed restaurants around a coordinate
// and applies the listing filters in memory. OpenNow is resolved against the
// hours engine at the supplied evaluation time.
func (rs *RestaurantService) GetRestaurantsNearby(
	lat, lon, radius float64,
	params models.RestaurantFilterParams,
	now time.Time,
) ([]restaurant.Restaurant, error) {
	restaurants, err := rs.restaurantDao.GetNearbyRestaurants(lat, lon, radius)
	if err != nil {
		return nil, err
	}
	return filterRestaurants(restaurants, params, now), nil
}

func filterRestaurants(restaurants []restaurant.Restaurant, p models.RestaurantFilterParams, now time.Time) []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if p.KosherCategory != "" && !strings.EqualFold(r.KosherCategory, p.KosherCategory) {
			continue
		}
		if p.CertifyingAgency != "" && !strings.EqualFold(r.CertifyingAgency, p.CertifyingAgency) {
			continue
		}
		if p.City != "" && !strings.EqualFold(r.City, p.City) {
			continue
		}
		if p.RatingMin != nil && r.Rating < *p.RatingMin {
			continue
		}
		if p.OpenNow != nil && *p.OpenNow {
			if !hours.ResolveStatus(r.HoursInput(), now).IsOpenNow {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// GetRestaurant returns a restaurant by ID, preferring the Redis cache and
// falling back to the backend on a miss.
func (rs *RestaurantService) GetRestaurant(restaurantID string) (*restaurant.Restaurant, error) {
	if r, err := rs.restaurantDao.GetRestaurant(restaurantID); err == nil {
		return r, nil
	}

	r, err := rs.backendAPI.GetRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if err := rs.restaurantDao.UpsertRestaurant(*r); err != nil {
		log.Printf("[RestaurantService] Failed to cache restaurant %s: %v", restaurantID, err)
	}
	return r, nil
}

// SubmitRestaurant validates a user submission, queues it in Redis, and
// forwards it to the backend review queue.
func (rs *RestaurantService) SubmitRestaurant(sub *models.RestaurantSubmission) (*models.SubmissionReceipt, error) {
	if err := rs.validate.Struct(sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}

	sub.ID = uuid.NewString()
	sub.Status = "pending"
	sub.SubmittedAt = time.Now().UTC()

	if err := rs.restaurantDao.SaveSubmission(sub); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	receipt, err := rs.backendAPI.SubmitRestaurant(sub)
	if err != nil {
		// the pending copy stays in Redis for the next refresher pass
		log.Printf("[RestaurantService] Backend submission failed for %s: %v", sub.ID, err)
		return &models.SubmissionReceipt{SubmissionID: sub.ID, Status: "pending"}, nil
	}
	return receipt, nil
}
