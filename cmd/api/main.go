package main

import (
	"log"

	"github.com/joho/godotenv"

	httpapi "github.com/antauren/star-burger/internal/api/http"
	"github.com/antauren/star-burger/internal/config"
	"github.com/antauren/star-burger/internal/service"
	"github.com/antauren/star-burger/internal/storage"
)

func main() {
	_ = godotenv.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	publisher := storage.NewKafkaPublisher(writer)
	stats := storage.NewStatsStore(db, rdb)
	qr := service.DefaultQRGenerator{
		BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo),
		service.NewCategoryService(repo),
		service.NewProductService(repo),
		service.NewMenuService(repo),
		service.NewOrderService(repo, repo, publisher, qr),
		stats,
	)

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), httpapi.NewRouter(handler))
}
