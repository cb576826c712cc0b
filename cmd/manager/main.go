package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/antauren/star-burger/internal/config"
	"github.com/antauren/star-burger/internal/geo"
	"github.com/antauren/star-burger/internal/manager"
	"github.com/antauren/star-burger/internal/service"
	"github.com/antauren/star-burger/internal/storage"
)

const coordCacheTTL = 30 * time.Minute

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("MANAGER_JWT_SECRET")
	if secret == "" {
		log.Fatal("MANAGER_JWT_SECRET environment variable not set")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	coordCache := storage.NewCoordCache(rdb, coordCacheTTL)
	geocoder := geo.NewGeocoder(os.Getenv("YANDEX_GEOCODER_API_KEY"))
	resolver := geo.NewResolver(coordCache, geocoder)

	handler := manager.NewHandler(
		service.NewRestaurantService(repo),
		service.NewProductService(repo),
		service.NewMenuService(repo),
		service.NewOrderService(repo, repo, nil, nil),
		service.NewMatcher(repo, resolver),
		manager.NewAuth(secret, repo),
	)

	manager.StartServer(":"+config.Getenv("MANAGER_PORT", "8081"), manager.NewRouter(handler))
}
