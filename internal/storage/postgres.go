package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/antauren/star-burger/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name, address, contact_phone) VALUES ($1, $2, $3) RETURNING id, created_at",
		rest.Name, rest.Address, rest.ContactPhone,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(contact_phone, ''), created_at
		FROM restaurants
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(address, ''), COALESCE(contact_phone, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"UPDATE restaurants SET name=$1, address=$2, contact_phone=$3 WHERE id=$4 RETURNING id, name, COALESCE(address, ''), COALESCE(contact_phone, ''), created_at",
		rest.Name, rest.Address, rest.ContactPhone, rest.ID).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateCategory(category *domain.ProductCategory) error {
	return r.DB.QueryRow(
		"INSERT INTO product_categories (name) VALUES ($1) RETURNING id",
		category.Name,
	).Scan(&category.ID)
}

func (r *PostgresRepository) ListCategories() ([]domain.ProductCategory, error) {
	rows, err := r.DB.Query("SELECT id, name FROM product_categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.ProductCategory
	for rows.Next() {
		var category domain.ProductCategory
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// DeleteCategory relies on ON DELETE SET NULL: products keep existing
// with no category.
func (r *PostgresRepository) DeleteCategory(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM product_categories WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateProduct(product *domain.Product) error {
	var categoryID *int
	if product.Category != nil {
		categoryID = &product.Category.ID
	}
	return r.DB.QueryRow(
		"INSERT INTO products (name, category_id, price, image_url, special_status, description) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at",
		product.Name, categoryID, product.Price, product.ImageURL, product.Special, product.Description).
		Scan(&product.ID, &product.CreatedAt)
}

const productColumns = `
	p.id, p.name, p.price, COALESCE(p.image_url, ''), p.special_status,
	COALESCE(p.description, ''), p.created_at, c.id, c.name`

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var product domain.Product
	var categoryID sql.NullInt64
	var categoryName sql.NullString

	err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.ImageURL,
		&product.Special, &product.Description, &product.CreatedAt, &categoryID, &categoryName)
	if err != nil {
		return product, err
	}

	if categoryID.Valid {
		product.Category = &domain.ProductCategory{
			ID:   int(categoryID.Int64),
			Name: categoryName.String,
		}
	}
	return product, nil
}

func (r *PostgresRepository) ListProducts() ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT` + productColumns + `
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// ListAvailableProducts returns products carried with availability=true
// by at least one restaurant.
func (r *PostgresRepository) ListAvailableProducts() ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT DISTINCT` + productColumns + `
		FROM products p
		JOIN menu_items mi ON mi.product_id = p.id AND mi.availability = TRUE
		LEFT JOIN product_categories c ON c.id = p.category_id
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *PostgresRepository) GetProduct(id int) (*domain.Product, error) {
	var product domain.Product
	var categoryID sql.NullInt64
	var categoryName sql.NullString

	err := r.DB.QueryRow(`
		SELECT`+productColumns+`
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		WHERE p.id = $1`, id).
		Scan(&product.ID, &product.Name, &product.Price, &product.ImageURL,
			&product.Special, &product.Description, &product.CreatedAt, &categoryID, &categoryName)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		product.Category = &domain.ProductCategory{
			ID:   int(categoryID.Int64),
			Name: categoryName.String,
		}
	}
	return &product, nil
}

func (r *PostgresRepository) UpdateProduct(product *domain.Product) error {
	var categoryID *int
	if product.Category != nil {
		categoryID = &product.Category.ID
	}
	_, err := r.DB.Exec(`
		UPDATE products
		SET name=$1, category_id=$2, price=$3, special_status=$4, description=$5
		WHERE id=$6`,
		product.Name, categoryID, product.Price, product.Special, product.Description, product.ID)
	return err
}

func (r *PostgresRepository) DeleteProduct(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateProductImage(id int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE products SET image_url=$1 WHERE id=$2", imageURL, id)
	return err
}

// SetMenuItem creates or updates the single menu row for a
// (restaurant, product) pair.
func (r *PostgresRepository) SetMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, product_id, availability)
		VALUES ($1, $2, $3)
		ON CONFLICT (restaurant_id, product_id) DO UPDATE SET availability = EXCLUDED.availability
		RETURNING id
	`, item.RestaurantID, item.ProductID, item.Availability).Scan(&item.ID)
}

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query("SELECT id, restaurant_id, product_id, availability FROM menu_items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.ProductID, &item.Availability); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// RestaurantsServingAll returns the restaurants whose menus carry every
// given product with availability=true.
func (r *PostgresRepository) RestaurantsServingAll(productIDs []int) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT r.id, r.name, COALESCE(r.address, ''), COALESCE(r.contact_phone, ''), r.created_at
		FROM restaurants r
		JOIN menu_items mi ON mi.restaurant_id = r.id AND mi.availability = TRUE
		WHERE mi.product_id = ANY($1)
		GROUP BY r.id, r.name, r.address, r.contact_phone, r.created_at
		HAVING COUNT(DISTINCT mi.product_id) = $2
	`, pq.Array(productIDs), len(productIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

// CreateOrder persists the order and its items atomically. Each item's
// price is snapshotted from the product's current price; a duplicate
// (order, product) pair updates the existing row.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (address, firstname, lastname, phonenumber, status, payment_method, comment)
		VALUES ($1, $2, $3, $4, 'unprocessed', 'not_selected', $5)
		RETURNING id, status, payment_method, registered_at
	`, order.Address, order.Firstname, order.Lastname, order.Phonenumber, order.Comment).
		Scan(&order.ID, &order.Status, &order.PaymentMethod, &order.RegisteredAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, product_id, quantity, price)
			SELECT $1, p.id, $2, p.price FROM products p WHERE p.id = $3
			ON CONFLICT (order_id, product_id)
			DO UPDATE SET quantity = EXCLUDED.quantity, price = EXCLUDED.price
			RETURNING price
		`, order.ID, item.Quantity, item.ProductID).Scan(&item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `
	o.id, o.address, o.firstname, o.lastname, o.phonenumber, o.status,
	o.payment_method, COALESCE(o.comment, ''), o.registered_at,
	COALESCE(SUM(oi.quantity * oi.price), 0) AS total_amount`

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT`+orderColumns+`
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.id = $1
		GROUP BY o.id
	`, orderID).Scan(&order.ID, &order.Address, &order.Firstname, &order.Lastname,
		&order.Phonenumber, &order.Status, &order.PaymentMethod, &order.Comment,
		&order.RegisteredAt, &order.TotalAmount); err != nil {
		return nil, err
	}

	items, err := r.OrderItems(orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// ListOrders returns all orders, newest first, each with its total
// amount computed from the stored item prices.
func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT` + orderColumns + `
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY o.id
		ORDER BY o.registered_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Address, &order.Firstname, &order.Lastname,
			&order.Phonenumber, &order.Status, &order.PaymentMethod, &order.Comment,
			&order.RegisteredAt, &order.TotalAmount); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) OrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.product_id, p.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status=$1 WHERE id=$2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) GetStaffByUsername(username string) (*domain.Staff, error) {
	var staff domain.Staff
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, is_staff
		FROM staff_users
		WHERE username = $1`, username).
		Scan(&staff.ID, &staff.Username, &staff.PasswordHash, &staff.IsStaff)
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			address VARCHAR(100),
			contact_phone VARCHAR(50),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS product_categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			category_id INTEGER REFERENCES product_categories(id) ON DELETE SET NULL,
			price NUMERIC(8, 2) NOT NULL CHECK (price >= 0),
			image_url TEXT,
			special_status BOOLEAN NOT NULL DEFAULT FALSE,
			description VARCHAR(200),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			availability BOOLEAN NOT NULL DEFAULT TRUE,
			UNIQUE (restaurant_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			address VARCHAR(100) NOT NULL,
			firstname VARCHAR(20) NOT NULL,
			lastname VARCHAR(20) NOT NULL,
			phonenumber VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'unprocessed',
			payment_method VARCHAR(20) NOT NULL DEFAULT 'not_selected',
			comment TEXT,
			registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			called_at TIMESTAMP,
			delivered_at TIMESTAMP,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			quantity SMALLINT NOT NULL CHECK (quantity >= 1),
			price NUMERIC(8, 2) NOT NULL DEFAULT 0,
			UNIQUE (order_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS staff_users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(75) UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			is_staff BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
