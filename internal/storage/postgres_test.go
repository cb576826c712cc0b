package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antauren/star-burger/internal/domain"
)

func newTestRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestCreateRestaurant(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs("Burger Palace", "Moscow, Arbat 1", "+7 900 000 00 00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

	rest := &domain.Restaurant{
		Name:         "Burger Palace",
		Address:      "Moscow, Arbat 1",
		ContactPhone: "+7 900 000 00 00",
	}
	require.NoError(t, repo.CreateRestaurant(rest))
	assert.Equal(t, 1, rest.ID)
	assert.Equal(t, now, rest.CreatedAt)
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Moscow, Arbat 1", "Ivan", "Petrov", "+7 999 123 45 67", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "payment_method", "registered_at"}).
			AddRow(42, "unprocessed", "not_selected", now))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(42, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(100.0))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(42, 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(50.0))
	mock.ExpectCommit()

	order := &domain.Order{
		Address:     "Moscow, Arbat 1",
		Firstname:   "Ivan",
		Lastname:    "Petrov",
		Phonenumber: "+7 999 123 45 67",
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
	require.NoError(t, repo.CreateOrder(order))

	assert.Equal(t, 42, order.ID)
	assert.Equal(t, domain.OrderStatusUnprocessed, order.Status)
	assert.Equal(t, 100.0, order.Items[0].Price)
	assert.Equal(t, 50.0, order.Items[1].Price)
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Moscow, Arbat 1", "Ivan", "Petrov", "+7 999 123 45 67", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "payment_method", "registered_at"}).
			AddRow(42, "unprocessed", "not_selected", time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(42, 1, 999).
		WillReturnError(errors.New("no rows"))
	mock.ExpectRollback()

	order := &domain.Order{
		Address:     "Moscow, Arbat 1",
		Firstname:   "Ivan",
		Lastname:    "Petrov",
		Phonenumber: "+7 999 123 45 67",
		Items:       []domain.OrderItem{{ProductID: 999, Quantity: 1}},
	}
	assert.Error(t, repo.CreateOrder(order))
}

func TestGetOrderComputesTotal(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	mock.ExpectQuery("SELECT(.+)FROM orders o").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "address", "firstname", "lastname", "phonenumber", "status",
			"payment_method", "comment", "registered_at", "total_amount",
		}).AddRow(42, "Moscow, Arbat 1", "Ivan", "Petrov", "+7 999 123 45 67",
			"unprocessed", "not_selected", "", now, 250.0))
	mock.ExpectQuery("SELECT oi.product_id").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price"}).
			AddRow(1, "Cheeseburger", 2, 100.0).
			AddRow(2, "Fries", 1, 50.0))

	order, err := repo.GetOrder(42)

	require.NoError(t, err)
	assert.Equal(t, 250.0, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Cheeseburger", order.Items[0].ProductName)
}

func TestRestaurantsServingAll(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	mock.ExpectQuery("HAVING COUNT\\(DISTINCT mi.product_id\\)").
		WithArgs(pq.Array([]int{1, 2}), 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "contact_phone", "created_at"}).
			AddRow(10, "Burger Palace", "Moscow, Arbat 1", "", now))

	restaurants, err := repo.RestaurantsServingAll([]int{1, 2})

	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Burger Palace", restaurants[0].Name)
}

func TestSetMenuItem(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs(10, 1, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	item := &domain.MenuItem{RestaurantID: 10, ProductID: 1, Availability: true}
	require.NoError(t, repo.SetMenuItem(item))
	assert.Equal(t, 5, item.ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("processed", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdateOrderStatus(42, "processed")

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestGetProductNotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT(.+)FROM products p").
		WithArgs(999).
		WillReturnError(errors.New("sql: no rows in result set"))

	_, err := repo.GetProduct(999)

	assert.Error(t, err)
}

func TestListProductsWithAndWithoutCategory(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	mock.ExpectQuery("SELECT(.+)FROM products p").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "price", "image_url", "special_status",
			"description", "created_at", "category_id", "category_name",
		}).
			AddRow(1, "Cheeseburger", 100.0, "", false, "", now, 3, "Burgers").
			AddRow(2, "Mystery Box", 50.0, "", true, "", now, nil, nil))

	products, err := repo.ListProducts()

	require.NoError(t, err)
	require.Len(t, products, 2)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Burgers", products[0].Category.Name)
	assert.Nil(t, products[1].Category)
}
