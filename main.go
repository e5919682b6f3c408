package main

import (
	"log"
	"os"
	"time"

	"jewgo-server/config"
	"jewgo-server/di"
	"jewgo-server/util"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	log.Println("refreshing restaurant catalog")
	if err := container.RestaurantsRefresherService.RefreshRestaurantsData(); err != nil {
		log.Printf("initial catalog refresh failed: %v", err)
	}

	if env != "prod" {
		// local development aid: render the first catalog entry's hours chart
		if ids, err := container.RedisRestaurantDao.ListAllRestaurantIDs(); err == nil && len(ids) > 0 {
			if r, err := container.RedisRestaurantDao.GetRestaurant(ids[0]); err == nil {
				util.PlotWeeklyHours(*r)
			}
		}
	}

	log.Println("starting periodic refresher job")
	container.RestaurantsRefresherService.StartPeriodicJob(
		config.RESTAURANTS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	log.Println("starting server")
	container.JewGoHttpServer.Start()
}
