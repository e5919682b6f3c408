package models

import "jewgo-server/models/restaurant"

// RestaurantFilterResponse matches the backend filter endpoint's payload.
type RestaurantFilterResponse struct {
	Restaurants []restaurant.Restaurant `json:"restaurants"`
	Total       int                     `json:"total"`
	Status      string                  `json:"status,omitempty"`
}
