package geo

import "context"

// Cache stores resolved coordinates keyed by the raw address string.
// Keys are not normalized, so callers must pass identical strings to
// share entries.
type Cache interface {
	Get(ctx context.Context, place string) (Point, bool, error)
	Set(ctx context.Context, place string, point Point) error
}

type Fetcher interface {
	FetchCoordinates(ctx context.Context, place string) (Point, error)
}

// Resolver answers coordinate lookups from the cache first and falls
// back to the geocoder on a miss.
type Resolver struct {
	cache    Cache
	geocoder Fetcher
}

func NewResolver(cache Cache, geocoder Fetcher) *Resolver {
	return &Resolver{cache: cache, geocoder: geocoder}
}

func (r *Resolver) Resolve(ctx context.Context, place string) (Point, error) {
	if point, ok, err := r.cache.Get(ctx, place); err == nil && ok {
		return point, nil
	}

	point, err := r.geocoder.FetchCoordinates(ctx, place)
	if err != nil {
		return Point{}, err
	}

	_ = r.cache.Set(ctx, place, point)

	return point, nil
}

var _ Fetcher = (*Geocoder)(nil)
