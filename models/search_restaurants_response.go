package models

import "jewgo-server/models/restaurant"

// SearchRestaurantsResponse is the payload returned by the backend's
// restaurant search endpoint.
type SearchRestaurantsResponse struct {
	Restaurants []restaurant.Restaurant `json:"restaurants"`
	Total       int                     `json:"total"`
	Limit       int                     `json:"limit,omitempty"`
	Offset      int                     `json:"offset,omitempty"`
	Status      string                  `json:"status,omitempty"`
}
