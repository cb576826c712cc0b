package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/antauren/star-burger/internal/domain"
)

var ErrUnknownProduct = errors.New("unknown product")

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// OrderRequest is the order placement payload.
type OrderRequest struct {
	Address     string             `json:"address"`
	Firstname   string             `json:"firstname"`
	Lastname    string             `json:"lastname"`
	Phonenumber string             `json:"phonenumber"`
	Comment     string             `json:"comment,omitempty"`
	Products    []OrderRequestItem `json:"products"`
}

type OrderRequestItem struct {
	Product  int `json:"product"`
	Quantity int `json:"quantity"`
}

type OrderService struct {
	orders    OrderRepository
	products  ProductRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(orders OrderRepository, products ProductRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Place validates the request and persists the order with its items in
// one transaction. Item prices are snapshotted from the current
// product prices and never change afterwards.
func (s *OrderService) Place(ctx context.Context, request *OrderRequest) (*domain.Order, error) {
	if err := s.validate(request); err != nil {
		return nil, err
	}

	order := &domain.Order{
		Address:     request.Address,
		Firstname:   request.Firstname,
		Lastname:    request.Lastname,
		Phonenumber: request.Phonenumber,
		Comment:     request.Comment,
	}
	for _, item := range request.Products {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.Product,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		order.TotalAmount += float64(item.Quantity) * item.Price
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      "order_registered",
			OrderID:   order.ID,
			Timestamp: time.Now(),
		}
		for _, item := range order.Items {
			event.Items = append(event.Items, domain.OrderEventItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("[order] failed to publish order event: %v", err)
		}
	}

	return order, nil
}

func (s *OrderService) validate(request *OrderRequest) error {
	fields := map[string]string{
		"address":     request.Address,
		"firstname":   request.Firstname,
		"lastname":    request.Lastname,
		"phonenumber": request.Phonenumber,
	}
	for _, field := range []string{"address", "firstname", "lastname", "phonenumber"} {
		if fields[field] == "" {
			return ValidationError{Field: field, Message: "this field is required"}
		}
	}

	if len(request.Products) == 0 {
		return ValidationError{Field: "products", Message: "at least one product is required"}
	}

	for _, item := range request.Products {
		if item.Quantity < 1 {
			return ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
		}
		if _, err := s.products.GetProduct(item.Product); err != nil {
			return fmt.Errorf("%w: %d", ErrUnknownProduct, item.Product)
		}
	}

	return nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.orders.GetOrder(orderID)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.orders.ListOrders()
}

func (s *OrderService) Items(orderID int) ([]domain.OrderItem, error) {
	return s.orders.OrderItems(orderID)
}

func (s *OrderService) MarkProcessed(orderID int) error {
	rows, err := s.orders.UpdateOrderStatus(orderID, domain.OrderStatusProcessed)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("order not found")
	}
	return nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.orders.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/order/%d/qrcode", orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
