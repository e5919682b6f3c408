package backend

import (
	"jewgo-server/models"
	"jewgo-server/models/restaurant"
)

// JewGoBackendAPI defines the interface for talking to the JewGo backend
// service, which owns the restaurant catalog.
type JewGoBackendAPI interface {
	SearchRestaurantsNearby(lat, lng, radius float64) (*models.SearchRestaurantsResponse, error)
	GetRestaurant(restaurantID string) (*restaurant.Restaurant, error)
	FilterRestaurants(params models.RestaurantFilterParams) (*models.RestaurantFilterResponse, error)
	SubmitRestaurant(sub *models.RestaurantSubmission) (*models.SubmissionReceipt, error)
	SetAPIKey(key string)
}
