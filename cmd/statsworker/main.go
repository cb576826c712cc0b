package main

import (
	"context"

	"github.com/joho/godotenv"

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

	reader := config.NewKafkaReader("orders", "statsworker")
	defer reader.Close()

	store := storage.NewStatsStore(db, rdb)
	consumer := service.NewStatsConsumer(reader, store)
	consumer.Start(context.Background())
}
