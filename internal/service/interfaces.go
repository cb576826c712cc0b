package service

import (
	"context"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/geo"
	"github.com/antauren/star-burger/internal/storage"
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
}

type CategoryRepository interface {
	CreateCategory(category *domain.ProductCategory) error
	ListCategories() ([]domain.ProductCategory, error)
	DeleteCategory(id int) (int64, error)
}

type ProductRepository interface {
	CreateProduct(product *domain.Product) error
	ListProducts() ([]domain.Product, error)
	ListAvailableProducts() ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	DeleteProduct(id int) (int64, error)
	UpdateProductImage(id int, imageURL string) error
}

type MenuRepository interface {
	SetMenuItem(item *domain.MenuItem) error
	ListMenuItems() ([]domain.MenuItem, error)
	RestaurantsServingAll(productIDs []int) ([]domain.Restaurant, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	OrderItems(orderID int) ([]domain.OrderItem, error)
	UpdateOrderStatus(orderID int, status string) (int64, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type CoordinateResolver interface {
	Resolve(ctx context.Context, place string) (geo.Point, error)
}

type ProductStats interface {
	TopProducts(limit int) ([]domain.ProductStat, error)
}

type StatsRecorder interface {
	RecordOrder(event domain.OrderEvent) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, request *OrderRequest) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	List() ([]domain.Order, error)
	Items(orderID int) ([]domain.OrderItem, error)
	MarkProcessed(orderID int) error
	GetQRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type MatcherInterface interface {
	Candidates(ctx context.Context, address string, items []domain.OrderItem) ([]domain.RestaurantDistance, error)
}

var (
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ CategoryRepository   = (*storage.PostgresRepository)(nil)
	_ ProductRepository    = (*storage.PostgresRepository)(nil)
	_ MenuRepository       = (*storage.PostgresRepository)(nil)
	_ OrderRepository      = (*storage.PostgresRepository)(nil)
	_ OrderPublisher       = (*storage.KafkaPublisher)(nil)
	_ CoordinateResolver   = (*geo.Resolver)(nil)
	_ ProductStats         = (*storage.StatsStore)(nil)
	_ StatsRecorder        = (*storage.StatsStore)(nil)
)
