package services

import (
	"log"
	"time"

	"jewgo-server/api/backend"
	"jewgo-server/dao/redis"
	"jewgo-server/hours"
	"jewgo-server/models/restaurant"
)

// Neighborhood holds a named coordinate to refresh the catalog around.
type Neighborhood struct {
	Name     string
	Lat      float64
	Lng      float64
	RadiusKm float64
}

// defaultNeighborhoods is the constant list of areas the directory covers.
var defaultNeighborhoods = []Neighborhood{
	{Name: "Crown Heights", Lat: 40.6694, Lng: -73.9422, RadiusKm: 3},
	{Name: "Flatbush", Lat: 40.6415, Lng: -73.9632, RadiusKm: 4},
	{Name: "Williamsburg", Lat: 40.7081, Lng: -73.9571, RadiusKm: 3},
	{Name: "Borough Park", Lat: 40.6350, Lng: -73.9921, RadiusKm: 3},
	{Name: "Five Towns", Lat: 40.6223, Lng: -73.7318, RadiusKm: 6},
	{Name: "Kew Gardens Hills", Lat: 40.7266, Lng: -73.8201, RadiusKm: 3},
	{Name: "Upper West Side", Lat: 40.7870, Lng: -73.9754, RadiusKm: 3},
	{Name: "Monsey", Lat: 41.1110, Lng: -74.0687, RadiusKm: 6},
	{Name: "Teaneck", Lat: 40.8876, Lng: -74.0143, RadiusKm: 5},
	{Name: "Lakewood", Lat: 40.0821, Lng: -74.2097, RadiusKm: 8},
}

// RestaurantsRefresherService periodically refreshes the restaurant catalog
// from the JewGo backend.
type RestaurantsRefresherService struct {
	restaurantDao *redis.RedisRestaurantDAO
	backendAPI    backend.JewGoBackendAPI
}

// NewRestaurantsRefresherService constructs a new refresher with dependencies.
func NewRestaurantsRefresherService(
	restaurantDao *redis.RedisRestaurantDAO,
	backendAPI backend.JewGoBackendAPI,
) *RestaurantsRefresherService {
	return &RestaurantsRefresherService{
		restaurantDao: restaurantDao,
		backendAPI:    backendAPI,
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (rr *RestaurantsRefresherService) StartPeriodicJob(interval time.Duration) {
	go rr.startPeriodicJob(interval)
}

func (rr *RestaurantsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[RestaurantsRefresherService] Running periodic catalog refresh.")
		if err := rr.RefreshRestaurantsData(); err != nil {
			log.Printf("[RestaurantsRefresherService] RefreshRestaurantsData returned error: %v", err)
		} else {
			log.Println("[RestaurantsRefresherService] RefreshRestaurantsData completed successfully.")
		}
	}
}

// RefreshRestaurantsData pulls every covered neighborhood from the backend,
// dedupes the results, upserts them into the geo index, and refreshes the
// cached weekly schedules.
func (rr *RestaurantsRefresherService) RefreshRestaurantsData() error {
	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	var unique []restaurant.Restaurant

	log.Printf("[RestaurantsRefresherService] Fetching %d neighborhoods", len(defaultNeighborhoods))
	for _, n := range defaultNeighborhoods {
		log.Printf("[RestaurantsRefresherService] Fetching %s (lat=%.4f, lng=%.4f)", n.Name, n.Lat, n.Lng)
		resp, err := rr.backendAPI.SearchRestaurantsNearby(n.Lat, n.Lng, n.RadiusKm)
		if err != nil {
			log.Printf("[RestaurantsRefresherService] Failed to fetch %s: %v", n.Name, err)
			continue
		}

		for _, r := range resp.Restaurants {
			if _, dup := seenIDs[r.ID]; dup {
				continue
			}
			if _, dup := seenNames[r.Name]; dup {
				log.Printf("[RestaurantsRefresherService] Skipping duplicate restaurant name=%q", r.Name)
				continue
			}
			seenIDs[r.ID] = struct{}{}
			seenNames[r.Name] = struct{}{}
			unique = append(unique, r)
		}
	}

	log.Printf("[RestaurantsRefresherService] Upserting %d restaurants", len(unique))
	for _, r := range unique {
		if err := rr.restaurantDao.UpsertRestaurant(r); err != nil {
			log.Printf("[RestaurantsRefresherService] Upsert failed for %s: %v", r.ID, err)
			continue
		}
		rr.cacheWeeklyHours(r)
	}

	return nil
}

// cacheWeeklyHours renders and caches the restaurant's weekly schedule, or
// clears a stale entry when the hours are unparseable.
func (rr *RestaurantsRefresherService) cacheWeeklyHours(r restaurant.Restaurant) {
	entries := hours.FormatWeeklySchedule(r.HoursInput())
	if entries == nil {
		if err := rr.restaurantDao.DeleteWeeklyHours(r.ID); err != nil {
			log.Printf("[RestaurantsRefresherService] Failed to clear weekly hours for %s: %v", r.ID, err)
		}
		return
	}
	if err := rr.restaurantDao.SetWeeklyHours(r.ID, entries); err != nil {
		log.Printf("[RestaurantsRefresherService] Failed to cache weekly hours for %s: %v", r.ID, err)
	}
}

// RefreshCachedWeeklyHours re-renders the weekly schedule for every
// restaurant that already has a cache entry.
func (rr *RestaurantsRefresherService) RefreshCachedWeeklyHours() error {
	ids, err := rr.restaurantDao.ListCachedWeeklyHoursRestaurantIDs()
	if err != nil {
		log.Printf("[RestaurantsRefresherService] Error listing cached weekly hours IDs: %v", err)
		return err
	}
	log.Printf("[RestaurantsRefresherService] Found %d cached weekly hours entries", len(ids))

	for _, id := range ids {
		r, err := rr.restaurantDao.GetRestaurant(id)
		if err != nil {
			log.Printf("[RestaurantsRefresherService] No cached restaurant for %s, clearing hours: %v", id, err)
			if err := rr.restaurantDao.DeleteWeeklyHours(id); err != nil {
				log.Printf("[RestaurantsRefresherService] Failed to clear weekly hours for %s: %v", id, err)
			}
			continue
		}
		rr.cacheWeeklyHours(*r)
	}
	return nil
}
