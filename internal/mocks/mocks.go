// Package mocks contains testify mocks for the service-layer
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/geo"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) ListRestaurants() ([]domain.Restaurant, error) {
	ret := m.Called()
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	ret := m.Called(id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) DeleteRestaurant(id int) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type CategoryRepository struct {
	mock.Mock
}

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CategoryRepository) CreateCategory(category *domain.ProductCategory) error {
	return m.Called(category).Error(0)
}

func (m *CategoryRepository) ListCategories() ([]domain.ProductCategory, error) {
	ret := m.Called()
	var r0 []domain.ProductCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ProductCategory)
	}
	return r0, ret.Error(1)
}

func (m *CategoryRepository) DeleteCategory(id int) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductRepository) CreateProduct(product *domain.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) ListProducts() ([]domain.Product, error) {
	ret := m.Called()
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductRepository) ListAvailableProducts() ([]domain.Product, error) {
	ret := m.Called()
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductRepository) GetProduct(id int) (*domain.Product, error) {
	ret := m.Called(id)
	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (m *ProductRepository) UpdateProduct(product *domain.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) DeleteProduct(id int) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *ProductRepository) UpdateProductImage(id int, imageURL string) error {
	return m.Called(id, imageURL).Error(0)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) SetMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) ListMenuItems() ([]domain.MenuItem, error) {
	ret := m.Called()
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) RestaurantsServingAll(productIDs []int) ([]domain.Restaurant, error) {
	ret := m.Called(productIDs)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	ret := m.Called(orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	ret := m.Called()
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (m *OrderRepository) OrderItems(orderID int) ([]domain.OrderItem, error) {
	ret := m.Called(orderID)
	var r0 []domain.OrderItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderItem)
	}
	return r0, ret.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(orderID int, status string) (int64, error) {
	ret := m.Called(orderID, status)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	ret := m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type CoordinateResolver struct {
	mock.Mock
}

func NewCoordinateResolver(t testingT) *CoordinateResolver {
	m := &CoordinateResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CoordinateResolver) Resolve(ctx context.Context, place string) (geo.Point, error) {
	ret := m.Called(ctx, place)
	return ret.Get(0).(geo.Point), ret.Error(1)
}

type ProductStats struct {
	mock.Mock
}

func NewProductStats(t testingT) *ProductStats {
	m := &ProductStats{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductStats) TopProducts(limit int) ([]domain.ProductStat, error) {
	ret := m.Called(limit)
	var r0 []domain.ProductStat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ProductStat)
	}
	return r0, ret.Error(1)
}

type StatsRecorder struct {
	mock.Mock
}

func NewStatsRecorder(t testingT) *StatsRecorder {
	m := &StatsRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatsRecorder) RecordOrder(event domain.OrderEvent) error {
	return m.Called(event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	ret := m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type StaffRepository struct {
	mock.Mock
}

func NewStaffRepository(t testingT) *StaffRepository {
	m := &StaffRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StaffRepository) GetStaffByUsername(username string) (*domain.Staff, error) {
	ret := m.Called(username)
	var r0 *domain.Staff
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Staff)
	}
	return r0, ret.Error(1)
}
