package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"jewgo-server/api"
	"jewgo-server/api/backend"
	"jewgo-server/config"
	"jewgo-server/dao/redis"
	"jewgo-server/db"
	"jewgo-server/server"
	"jewgo-server/server/handlers"
	services "jewgo-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                 db.RedisClient
	RedisRestaurantDao          *redis.RedisRestaurantDAO
	BackendAPI                  backend.JewGoBackendAPI
	RestaurantService           *services.RestaurantService
	RestaurantHandler           *handlers.RestaurantHandler
	MuxRouter                   *mux.Router
	Router                      *server.Router
	JewGoHttpServer             *server.JewGoHttpServer
	RestaurantsRefresherService *services.RestaurantsRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)

	restaurantDao := redis.NewRedisRestaurantDAO(redisClient)

	var backendAPI backend.JewGoBackendAPI
	if env != "prod" {
		backendAPI = backend.NewJewGoBackendClientMock()
		log.Printf("Using mock JewGo backend api")
	} else {
		log.Printf("Using prod JewGo backend api")
		httpClient := api.NewHTTPClient(config.JEWGO_BACKEND_ENDPOINT_BASE_V1)

		client := backend.NewJewGoBackendClient(httpClient)
		client.SetAPIKey(config.BackendAPIKey())
		backendAPI = client
	}

	restaurantService := services.NewRestaurantService(restaurantDao, backendAPI)

	restaurantHandler := handlers.NewRestaurantHandler(restaurantDao, restaurantService)

	muxRouter := mux.NewRouter()

	router := server.NewRouter(restaurantHandler, muxRouter)

	jewgoHttpServer := server.NewJewGoHttpServer(router, muxRouter)

	restaurantsRefresherService := services.NewRestaurantsRefresherService(restaurantDao, backendAPI)

	return &Container{
		RedisClient:                 redisClient,
		RedisRestaurantDao:          restaurantDao,
		BackendAPI:                  backendAPI,
		RestaurantService:           restaurantService,
		RestaurantHandler:           restaurantHandler,
		MuxRouter:                   muxRouter,
		Router:                      router,
		JewGoHttpServer:             jewgoHttpServer,
		RestaurantsRefresherService: restaurantsRefresherService,
	}
}
