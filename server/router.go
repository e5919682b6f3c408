package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RestaurantRoutes is the handler surface the router wires up.
type RestaurantRoutes interface {
	GetRestaurantsNearby(w http.ResponseWriter, r *http.Request)
	GetRestaurant(w http.ResponseWriter, r *http.Request)
	GetRestaurantStatus(w http.ResponseWriter, r *http.Request)
	GetRestaurantHours(w http.ResponseWriter, r *http.Request)
	SubmitRestaurant(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	restaurantHandler RestaurantRoutes
	router            *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	restaurantHandler RestaurantRoutes,
	router *mux.Router) *Router {
	return &Router{
		restaurantHandler: restaurantHandler,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude}&lon={longitude}&radius={km}, plus optional
	// category/agency/open_now/verbose filters
	r.router.HandleFunc("/v1/restaurants/nearby", r.restaurantHandler.GetRestaurantsNearby).Methods("GET")

	r.router.HandleFunc("/v1/restaurants/{id}/status", r.restaurantHandler.GetRestaurantStatus).Methods("GET")
	r.router.HandleFunc("/v1/restaurants/{id}/hours", r.restaurantHandler.GetRestaurantHours).Methods("GET")
	r.router.HandleFunc("/v1/restaurants/{id}", r.restaurantHandler.GetRestaurant).Methods("GET")
	r.router.HandleFunc("/v1/restaurants", r.restaurantHandler.SubmitRestaurant).Methods("POST")

	r.router.HandleFunc("/ping", r.restaurantHandler.Ping).Methods("GET")
}
