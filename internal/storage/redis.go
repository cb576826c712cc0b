package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/antauren/star-burger/internal/geo"
)

// CoordCache keeps geocoded coordinates in Redis so repeated lookups
// for the same address skip the external geocoder. Entries expire
// after TTL.
type CoordCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCoordCache(client *redis.Client, ttl time.Duration) *CoordCache {
	return &CoordCache{Client: client, TTL: ttl}
}

func (c *CoordCache) key(place string) string {
	return "geo:" + place
}

func (c *CoordCache) Get(ctx context.Context, place string) (geo.Point, bool, error) {
	value, err := c.Client.Get(ctx, c.key(place)).Result()
	if err == redis.Nil {
		return geo.Point{}, false, nil
	}
	if err != nil {
		return geo.Point{}, false, err
	}

	fields := strings.Fields(value)
	if len(fields) != 2 {
		return geo.Point{}, false, nil
	}
	lon, lonErr := strconv.ParseFloat(fields[0], 64)
	lat, latErr := strconv.ParseFloat(fields[1], 64)
	if lonErr != nil || latErr != nil {
		return geo.Point{}, false, nil
	}

	return geo.Point{Lon: lon, Lat: lat}, true, nil
}

func (c *CoordCache) Set(ctx context.Context, place string, point geo.Point) error {
	value := strconv.FormatFloat(point.Lon, 'f', -1, 64) + " " +
		strconv.FormatFloat(point.Lat, 'f', -1, 64)
	return c.Client.Set(ctx, c.key(place), value, c.TTL).Err()
}

var _ geo.Cache = (*CoordCache)(nil)
