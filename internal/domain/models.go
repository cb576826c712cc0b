package domain

import "time"

const (
	OrderStatusUnprocessed = "unprocessed"
	OrderStatusProcessed   = "processed"

	PaymentCash        = "cash"
	PaymentCard        = "card"
	PaymentNotSelected = "not_selected"
)

type Restaurant struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Category    *ProductCategory `json:"category"`
	Price       float64          `json:"price"`
	ImageURL    string           `json:"image"`
	Special     bool             `json:"special_status"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}

// MenuItem links a restaurant to a product it sells. At most one row
// exists per (restaurant, product) pair.
type MenuItem struct {
	ID           int  `json:"id"`
	RestaurantID int  `json:"restaurant_id"`
	ProductID    int  `json:"product_id"`
	Availability bool `json:"availability"`
}

type Order struct {
	ID            int         `json:"id"`
	Address       string      `json:"address"`
	Firstname     string      `json:"firstname"`
	Lastname      string      `json:"lastname"`
	Phonenumber   string      `json:"phonenumber"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	Comment       string      `json:"comment"`
	RegisteredAt  time.Time   `json:"registered_at"`
	CalledAt      *time.Time  `json:"called_at,omitempty"`
	DeliveredAt   *time.Time  `json:"delivered_at,omitempty"`
	TotalAmount   float64     `json:"total_amount"`
	Items         []OrderItem `json:"items"`
}

// OrderItem carries the price the product had when the order was
// placed. It never tracks later product price changes.
type OrderItem struct {
	ProductID   int     `json:"product"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// RestaurantDistance is one entry of an order's ranked candidate list.
type RestaurantDistance struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}

type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}

type Staff struct {
	ID           int
	Username     string
	PasswordHash string
	IsStaff      bool
}

type OrderEvent struct {
	Type      string           `json:"type"`
	OrderID   int              `json:"order_id"`
	Items     []OrderEventItem `json:"items"`
	Timestamp time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type ProductStat struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Score       float64 `json:"score"`
}
