package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"jewgo-server/dao/redis"
	"jewgo-server/hours"
	"jewgo-server/models"
	"jewgo-server/models/restaurant"
	services "jewgo-server/service"
)

const (
	LAT_QUERY_ARG      = "lat"
	LON_QUERY_ARG      = "lon"
	RADIUS_QUERY_ARG   = "radius"
	CATEGORY_QUERY_ARG = "category"
	AGENCY_QUERY_ARG   = "agency"
	OPEN_NOW_QUERY_ARG = "open_now"
	VERBOSE_QUERY_ARG  = "verbose"
)

// RestaurantWithStatus pairs a Restaurant with its resolved hours status.
type RestaurantWithStatus struct {
	Restaurant restaurant.Restaurant `json:"restaurant"`
	Status     hours.Status          `json:"hours_status"`
}

// MinifiedRestaurant is the small form returned when verbose=false.
type MinifiedRestaurant struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	KosherCategory   string `json:"kosher_category"`
	CertifyingAgency string `json:"certifying_agency"`
	IsOpenNow        bool   `json:"is_open_now"`
	HoursLabel       string `json:"hours_label"`
}

// StatusResponse decorates the hours engine output with listing identity.
type StatusResponse struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	hours.Status
}

// WeeklyHoursResponse is the payload of the hours display endpoint.
type WeeklyHoursResponse struct {
	RestaurantID string                   `json:"restaurant_id"`
	Available    bool                     `json:"available"`
	Schedule     []hours.DayScheduleEntry `json:"schedule,omitempty"`
	Display      string                   `json:"display,omitempty"`
}

type RestaurantHandler struct {
	restaurantDao *redis.RedisRestaurantDAO
	service       *services.RestaurantService
	clock         func() time.Time
}

func NewRestaurantHandler(restaurantDao *redis.RedisRestaurantDAO, service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantDao: restaurantDao,
		service:       service,
		clock:         time.Now,
	}
}

func (h *RestaurantHandler) GetRestaurantsNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	lat, lon, radius, params, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load filtered geo-indexed restaurants
	now := h.clock()
	restaurants, err := h.service.GetRestaurantsNearby(lat, lon, radius, params, now)
	if err != nil {
		log.Println("Error loading nearby restaurants:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Merge with resolved hours status
	merged := h.mergeStatus(restaurants, now)

	// 4) Transform according to verbose flag
	result := h.transform(merged, verbose)

	// 5) Write JSON
	writeJSON(w, http.StatusOK, result)
}

func (h *RestaurantHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, params models.RestaurantFilterParams, verbose bool, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	params.KosherCategory = vals.Get(CATEGORY_QUERY_ARG)
	params.CertifyingAgency = vals.Get(AGENCY_QUERY_ARG)
	if v := vals.Get(OPEN_NOW_QUERY_ARG); v != "" {
		openNow, _ := strconv.ParseBool(v)
		params.OpenNow = &openNow
	}
	verbose = false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

func (h *RestaurantHandler) mergeStatus(restaurants []restaurant.Restaurant, now time.Time) []RestaurantWithStatus {
	out := make([]RestaurantWithStatus, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, RestaurantWithStatus{
			Restaurant: r,
			Status:     hours.ResolveStatus(r.HoursInput(), now),
		})
	}
	// open listings first, then by name
	sort.Slice(out, func(i, j int) bool {
		if out[i].Status.IsOpenNow != out[j].Status.IsOpenNow {
			return out[i].Status.IsOpenNow
		}
		return out[i].Restaurant.Name < out[j].Restaurant.Name
	})
	return out
}

func (h *RestaurantHandler) transform(merged []RestaurantWithStatus, verbose bool) interface{} {
	if verbose {
		return merged
	}
	min := make([]MinifiedRestaurant, 0, len(merged))
	for _, m := range merged {
		min = append(min, MinifiedRestaurant{
			ID:               m.Restaurant.ID,
			Name:             m.Restaurant.Name,
			Address:          m.Restaurant.Address,
			KosherCategory:   m.Restaurant.KosherCategory,
			CertifyingAgency: m.Restaurant.CertifyingAgency,
			IsOpenNow:        m.Status.IsOpenNow,
			HoursLabel:       m.Status.Label,
		})
	}
	return min
}

// GetRestaurant handles GET /v1/restaurants/{id}
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rest, err := h.service.GetRestaurant(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Restaurant "+id+" not found")
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

// GetRestaurantStatus handles GET /v1/restaurants/{id}/status
func (h *RestaurantHandler) GetRestaurantStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rest, err := h.service.GetRestaurant(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Restaurant "+id+" not found")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		RestaurantID: rest.ID,
		Name:         rest.Name,
		Status:       hours.ResolveStatus(rest.HoursInput(), h.clock()),
	})
}

// GetRestaurantHours handles GET /v1/restaurants/{id}/hours
func (h *RestaurantHandler) GetRestaurantHours(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// the refresher keeps a rendered copy cached; fall back to rendering
	// from the restaurant record on a miss
	entries, err := h.restaurantDao.GetWeeklyHours(id)
	if err != nil || len(entries) == 0 {
		rest, err := h.service.GetRestaurant(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "Restaurant "+id+" not found")
			return
		}
		entries = hours.FormatWeeklySchedule(rest.HoursInput())
	}

	resp := WeeklyHoursResponse{RestaurantID: id, Available: entries != nil, Schedule: entries}
	if entries != nil {
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, e.Day+" "+e.Hours)
		}
		resp.Display = strings.Join(parts, ", ")
	}
	writeJSON(w, http.StatusOK, resp)
}

// SubmitRestaurant handles POST /v1/restaurants
func (h *RestaurantHandler) SubmitRestaurant(w http.ResponseWriter, r *http.Request) {
	var sub models.RestaurantSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Malformed submission body")
		return
	}

	receipt, err := h.service.SubmitRestaurant(&sub)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSubmission) {
			writeError(w, http.StatusBadRequest, "invalid_submission", err.Error())
			return
		}
		log.Println("Error accepting submission:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, receipt)
}

// Ping handles GET /ping
func (h *RestaurantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: code, Message: message})
}
