package storage

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/antauren/star-burger/internal/domain"
)

// StatsStore maintains per-product daily order counters in Redis
// sorted sets, with product names looked up in Postgres.
type StatsStore struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStatsStore(db *sql.DB, rdb *redis.Client) *StatsStore {
	return &StatsStore{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func dailyKey(day time.Time) string {
	return "stats:daily:" + day.Format("2006-01-02")
}

func (s *StatsStore) RecordOrder(event domain.OrderEvent) error {
	key := dailyKey(event.Timestamp)
	for _, item := range event.Items {
		if err := s.rdb.ZIncrBy(s.ctx, key, float64(item.Quantity), strconv.Itoa(item.ProductID)).Err(); err != nil {
			return err
		}
	}
	s.rdb.Expire(s.ctx, key, 7*24*time.Hour)
	return nil
}

func (s *StatsStore) TopProducts(limit int) ([]domain.ProductStat, error) {
	results, err := s.rdb.ZRevRangeWithScores(s.ctx, dailyKey(time.Now()), 0, int64(limit-1)).Result()
	if err != nil {
		return []domain.ProductStat{}, nil
	}

	var top []domain.ProductStat
	for _, result := range results {
		productID, _ := strconv.Atoi(result.Member.(string))
		var name string
		if err := s.db.QueryRow("SELECT name FROM products WHERE id = $1", productID).Scan(&name); err != nil {
			continue
		}
		top = append(top, domain.ProductStat{
			ProductID:   productID,
			ProductName: name,
			Score:       result.Score,
		})
	}
	return top, nil
}
