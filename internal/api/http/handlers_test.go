package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/mocks"
	"github.com/antauren/star-burger/internal/service"
)

type handlerMocks struct {
	restaurants *mocks.RestaurantRepository
	categories  *mocks.CategoryRepository
	products    *mocks.ProductRepository
	menu        *mocks.MenuRepository
	orders      *mocks.OrderRepository
	stats       *mocks.ProductStats
}

func newTestHandler(t *testing.T) (*Handler, *handlerMocks) {
	m := &handlerMocks{
		restaurants: mocks.NewRestaurantRepository(t),
		categories:  mocks.NewCategoryRepository(t),
		products:    mocks.NewProductRepository(t),
		menu:        mocks.NewMenuRepository(t),
		orders:      mocks.NewOrderRepository(t),
		stats:       mocks.NewProductStats(t),
	}
	handler := NewHandler(
		service.NewRestaurantService(m.restaurants),
		service.NewCategoryService(m.categories),
		service.NewProductService(m.products),
		service.NewMenuService(m.menu),
		service.NewOrderService(m.orders, m.products, nil, nil),
		m.stats,
	)
	return handler, m
}

func serve(handler *Handler, r *http.Request) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func orderPayload() []byte {
	return []byte(`{
		"address": "Moscow, Arbat 1",
		"firstname": "Ivan",
		"lastname": "Petrov",
		"phonenumber": "+7 999 123 45 67",
		"products": [{"product": 1, "quantity": 2}]
	}`)
}

func TestRegisterOrderCreated(t *testing.T) {
	handler, m := newTestHandler(t)

	m.products.On("GetProduct", 1).Return(&domain.Product{ID: 1}, nil)
	m.orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 42
		}).
		Return(nil)

	payload := orderPayload()
	w := serve(handler, httptest.NewRequest("POST", "/api/order", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestRegisterOrderInvalidJSON(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := serve(handler, httptest.NewRequest("POST", "/api/order", bytes.NewReader([]byte(`{broken`))))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{broken`, w.Body.String())
}

func TestRegisterOrderValidationFailureEchoesPayload(t *testing.T) {
	handler, m := newTestHandler(t)

	payload := []byte(`{
		"address": "Moscow, Arbat 1",
		"firstname": "Ivan",
		"lastname": "Petrov",
		"phonenumber": "+7 999 123 45 67",
		"products": []
	}`)
	w := serve(handler, httptest.NewRequest("POST", "/api/order", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, payload, w.Body.Bytes())
	m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestRegisterOrderUnknownProduct(t *testing.T) {
	handler, m := newTestHandler(t)

	m.products.On("GetProduct", 1).Return(nil, assert.AnError)

	w := serve(handler, httptest.NewRequest("POST", "/api/order", bytes.NewReader(orderPayload())))

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestGetAvailableProducts(t *testing.T) {
	handler, m := newTestHandler(t)

	m.products.On("ListAvailableProducts").Return([]domain.Product{
		{ID: 1, Name: "Cheeseburger", Price: 100},
	}, nil)

	w := serve(handler, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Cheeseburger", products[0].Name)
}

func TestGetAvailableProductsEmpty(t *testing.T) {
	handler, m := newTestHandler(t)

	m.products.On("ListAvailableProducts").Return(nil, nil)

	w := serve(handler, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetBanners(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := serve(handler, httptest.NewRequest("GET", "/api/banners", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []domain.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 3)
}

func TestGetTopProducts(t *testing.T) {
	handler, m := newTestHandler(t)

	m.stats.On("TopProducts", 2).Return([]domain.ProductStat{
		{ProductID: 1, ProductName: "Cheeseburger", Score: 12},
		{ProductID: 2, ProductName: "Fries", Score: 7},
	}, nil)

	w := serve(handler, httptest.NewRequest("GET", "/api/products/top?limit=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var stats []domain.ProductStat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Len(t, stats, 2)
	assert.Equal(t, "Cheeseburger", stats[0].ProductName)
}

func TestSetMenuItem(t *testing.T) {
	handler, m := newTestHandler(t)

	m.menu.On("SetMenuItem", mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.RestaurantID == 10 && item.ProductID == 3 && item.Availability
	})).Return(nil)

	w := serve(handler, httptest.NewRequest("PUT", "/api/restaurants/10/menu/3",
		bytes.NewReader([]byte(`{"availability": true}`))))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	handler, m := newTestHandler(t)

	m.restaurants.On("DeleteRestaurant", 99).Return(int64(0), nil)

	w := serve(handler, httptest.NewRequest("DELETE", "/api/restaurants/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	handler, m := newTestHandler(t)

	w := serve(handler, httptest.NewRequest("POST", "/api/catalog/products",
		bytes.NewReader([]byte(`{"name": "Bad", "price": -5}`))))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.products.AssertNotCalled(t, "CreateProduct", mock.Anything)
}

func TestHealthCheck(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := serve(handler, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
