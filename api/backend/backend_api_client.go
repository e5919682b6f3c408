package backend

import (
	"net/url"
	"strconv"

	"jewgo-server/api"
	"jewgo-server/models"
	"jewgo-server/models/restaurant"
)

// JewGoBackendClient embeds the common HTTPClient.
type JewGoBackendClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewJewGoBackendClient creates a new instance of JewGoBackendClient.
func NewJewGoBackendClient(httpClient *api.HTTPClient) *JewGoBackendClient {
	return &JewGoBackendClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey stores the key sent with every backend request.
func (c *JewGoBackendClient) SetAPIKey(key string) {
	c.apiKey = key
}

func (c *JewGoBackendClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"X-Api-Key": c.apiKey}
}

// SearchRestaurantsNearby retrieves the restaurants around a coordinate and
// decodes the response.
func (c *JewGoBackendClient) SearchRestaurantsNearby(lat, lng, radius float64) (*models.SearchRestaurantsResponse, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))

	var response models.SearchRestaurantsResponse
	err := c.Request("GET", "/restaurants/search?"+q.Encode(), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetRestaurant retrieves a single restaurant given its id.
func (c *JewGoBackendClient) GetRestaurant(restaurantID string) (*restaurant.Restaurant, error) {
	var response restaurant.Restaurant
	err := c.Request("GET", "/restaurants/"+restaurantID, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// FilterRestaurants runs the backend's filter endpoint with the given params.
func (c *JewGoBackendClient) FilterRestaurants(params models.RestaurantFilterParams) (*models.RestaurantFilterResponse, error) {
	var response models.RestaurantFilterResponse
	err := c.Request("GET", "/restaurants/filter?"+params.ToURLValues().Encode(), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// SubmitRestaurant forwards a user submission to the backend review queue.
func (c *JewGoBackendClient) SubmitRestaurant(sub *models.RestaurantSubmission) (*models.SubmissionReceipt, error) {
	var response models.SubmissionReceipt
	err := c.Request("POST", "/restaurants", c.headers(), sub, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
