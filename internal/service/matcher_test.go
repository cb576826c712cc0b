package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/geo"
	"github.com/antauren/star-burger/internal/mocks"
)

func TestMatcherCandidatesSortedByDistance(t *testing.T) {
	menu := mocks.NewMenuRepository(t)
	resolver := mocks.NewCoordinateResolver(t)
	matcher := NewMatcher(menu, resolver)

	items := []domain.OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 3},
	}

	// duplicate product ids collapse before the menu lookup
	menu.On("RestaurantsServingAll", []int{1, 2}).Return([]domain.Restaurant{
		{ID: 10, Name: "Far Burger", Address: "far"},
		{ID: 11, Name: "Near Burger", Address: "near"},
	}, nil)

	resolver.On("Resolve", context.Background(), "Moscow, Arbat 1").
		Return(geo.Point{Lon: 37.6, Lat: 55.7}, nil)
	resolver.On("Resolve", context.Background(), "far").
		Return(geo.Point{Lon: 30.3, Lat: 59.9}, nil)
	resolver.On("Resolve", context.Background(), "near").
		Return(geo.Point{Lon: 37.7, Lat: 55.8}, nil)

	candidates, err := matcher.Candidates(context.Background(), "Moscow, Arbat 1", items)

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "Near Burger", candidates[0].Name)
	assert.Equal(t, "Far Burger", candidates[1].Name)
	assert.Less(t, candidates[0].DistanceKm, candidates[1].DistanceKm)
}

func TestMatcherCandidatesUnresolvableDeliveryAddress(t *testing.T) {
	menu := mocks.NewMenuRepository(t)
	resolver := mocks.NewCoordinateResolver(t)
	matcher := NewMatcher(menu, resolver)

	menu.On("RestaurantsServingAll", []int{1}).Return([]domain.Restaurant{
		{ID: 10, Name: "Burger", Address: "somewhere"},
	}, nil)
	resolver.On("Resolve", context.Background(), "gibberish").
		Return(geo.Point{}, geo.ErrNoResults)

	candidates, err := matcher.Candidates(context.Background(), "gibberish",
		[]domain.OrderItem{{ProductID: 1, Quantity: 1}})

	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestMatcherCandidatesDropsUngeocodableRestaurant(t *testing.T) {
	menu := mocks.NewMenuRepository(t)
	resolver := mocks.NewCoordinateResolver(t)
	matcher := NewMatcher(menu, resolver)

	menu.On("RestaurantsServingAll", []int{1}).Return([]domain.Restaurant{
		{ID: 10, Name: "Good", Address: "good"},
		{ID: 11, Name: "Broken", Address: "broken"},
	}, nil)
	resolver.On("Resolve", context.Background(), "origin").
		Return(geo.Point{Lon: 37.6, Lat: 55.7}, nil)
	resolver.On("Resolve", context.Background(), "good").
		Return(geo.Point{Lon: 37.61, Lat: 55.71}, nil)
	resolver.On("Resolve", context.Background(), "broken").
		Return(geo.Point{}, geo.ErrNoResults)

	candidates, err := matcher.Candidates(context.Background(), "origin",
		[]domain.OrderItem{{ProductID: 1, Quantity: 1}})

	assert.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, "Good", candidates[0].Name)
}

func TestMatcherCandidatesNoItems(t *testing.T) {
	menu := mocks.NewMenuRepository(t)
	resolver := mocks.NewCoordinateResolver(t)
	matcher := NewMatcher(menu, resolver)

	candidates, err := matcher.Candidates(context.Background(), "anywhere", nil)

	assert.NoError(t, err)
	assert.Nil(t, candidates)
}

func TestMatcherCandidatesMenuLookupError(t *testing.T) {
	menu := mocks.NewMenuRepository(t)
	resolver := mocks.NewCoordinateResolver(t)
	matcher := NewMatcher(menu, resolver)

	menu.On("RestaurantsServingAll", []int{1}).Return(nil, errors.New("db down"))

	_, err := matcher.Candidates(context.Background(), "origin",
		[]domain.OrderItem{{ProductID: 1, Quantity: 1}})

	assert.Error(t, err)
}
