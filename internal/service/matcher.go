package service

import (
	"context"
	"sort"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/geo"
)

// Matcher ranks the restaurants able to fulfill an order by distance
// to the delivery address. A restaurant qualifies only if its menu
// carries every ordered product with availability on.
type Matcher struct {
	menu     MenuRepository
	resolver CoordinateResolver
}

func NewMatcher(menu MenuRepository, resolver CoordinateResolver) *Matcher {
	return &Matcher{menu: menu, resolver: resolver}
}

// Candidates returns (restaurant name, km) pairs sorted ascending by
// distance. Restaurants whose address cannot be geocoded are dropped
// rather than failing the whole lookup; an unresolvable delivery
// address yields an empty list.
func (m *Matcher) Candidates(ctx context.Context, address string, items []domain.OrderItem) ([]domain.RestaurantDistance, error) {
	seen := make(map[int]bool)
	var productIDs []int
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}
	if len(productIDs) == 0 {
		return nil, nil
	}

	restaurants, err := m.menu.RestaurantsServingAll(productIDs)
	if err != nil {
		return nil, err
	}

	origin, err := m.resolver.Resolve(ctx, address)
	if err != nil {
		return []domain.RestaurantDistance{}, nil
	}

	var candidates []domain.RestaurantDistance
	for _, rest := range restaurants {
		point, err := m.resolver.Resolve(ctx, rest.Address)
		if err != nil {
			continue
		}
		candidates = append(candidates, domain.RestaurantDistance{
			Name:       rest.Name,
			DistanceKm: geo.DistanceKm(origin, point),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	return candidates, nil
}

var _ MatcherInterface = (*Matcher)(nil)
