package backend

import (
	"fmt"
	"strings"

	"jewgo-server/config"
	"jewgo-server/models"
	"jewgo-server/models/restaurant"
	"jewgo-server/util"
)

// JewGoBackendClientMock serves canned fixture data from resources/ instead
// of calling the backend. Used for local development and tests.
type JewGoBackendClientMock struct {
}

// NewJewGoBackendClientMock creates a new instance of JewGoBackendClientMock.
func NewJewGoBackendClientMock() *JewGoBackendClientMock {
	return &JewGoBackendClientMock{}
}

// SearchRestaurantsNearby returns the full fixture catalog regardless of the
// coordinate asked for.
func (c *JewGoBackendClientMock) SearchRestaurantsNearby(lat, lng, radius float64) (*models.SearchRestaurantsResponse, error) {
	response, err := readSearchFixture()
	if err != nil {
		fmt.Println("Could not read search restaurants response from json")
		return nil, err
	}
	return response, nil
}

// GetRestaurant scans the fixture catalog for the given id.
func (c *JewGoBackendClientMock) GetRestaurant(restaurantID string) (*restaurant.Restaurant, error) {
	response, err := readSearchFixture()
	if err != nil {
		fmt.Println("Could not read search restaurants response from json")
		return nil, err
	}
	for i := range response.Restaurants {
		if response.Restaurants[i].ID == restaurantID {
			return &response.Restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("restaurant %s not found in fixture catalog", restaurantID)
}

// FilterRestaurants applies simple in-memory filtering over the fixture
// catalog, mirroring the backend's filter semantics.
func (c *JewGoBackendClientMock) FilterRestaurants(params models.RestaurantFilterParams) (*models.RestaurantFilterResponse, error) {
	response, err := readSearchFixture()
	if err != nil {
		return nil, err
	}

	filtered := make([]restaurant.Restaurant, 0, len(response.Restaurants))
	for _, r := range response.Restaurants {
		if params.KosherCategory != "" && !strings.EqualFold(r.KosherCategory, params.KosherCategory) {
			continue
		}
		if params.CertifyingAgency != "" && !strings.EqualFold(r.CertifyingAgency, params.CertifyingAgency) {
			continue
		}
		if params.City != "" && !strings.EqualFold(r.City, params.City) {
			continue
		}
		if params.Query != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(params.Query)) {
			continue
		}
		if params.RatingMin != nil && r.Rating < *params.RatingMin {
			continue
		}
		filtered = append(filtered, r)
	}

	return &models.RestaurantFilterResponse{
		Restaurants: filtered,
		Total:       len(filtered),
		Status:      "OK",
	}, nil
}

// SubmitRestaurant acknowledges without persisting anything.
func (c *JewGoBackendClientMock) SubmitRestaurant(sub *models.RestaurantSubmission) (*models.SubmissionReceipt, error) {
	id := sub.ID
	if id == "" {
		id = "mock-submission"
	}
	return &models.SubmissionReceipt{
		SubmissionID: id,
		Status:       "pending",
		Message:      "submission received (mock)",
	}, nil
}

// SetAPIKey is a no-op for the mock.
func (c *JewGoBackendClientMock) SetAPIKey(key string) {
}

func readSearchFixture() (*models.SearchRestaurantsResponse, error) {
	return util.ReadSearchRestaurantsResponseFromJSON(
		config.GetResourcePath(config.SEARCH_RESTAURANTS_RESPONSE_RESOURCE))
}
