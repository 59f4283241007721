// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/config"
	"github.com/visioncraft/visioncraft-backend/internal/models"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

const orderNumberAttempts = 5

type OrderService struct {
	db            *gorm.DB
	cfg           *config.Config
	notifications *NotificationService
}

type PlaceOrderRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=COD UPI card"`
	UPIID         string               `json:"upi_id" validate:"omitempty,max=100"`

	ShippingName    string `json:"shipping_name" validate:"required,max=100"`
	ShippingEmail   string `json:"shipping_email" validate:"required,email"`
	ShippingPhone   string `json:"shipping_phone" validate:"required,max=20"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
	ShippingCity    string `json:"shipping_city" validate:"required,max=100"`
	ShippingState   string `json:"shipping_state" validate:"required,max=100"`
	ShippingPincode string `json:"shipping_pincode" validate:"required,pincode"`
}

func NewOrderService(db *gorm.DB, cfg *config.Config, notifications *NotificationService) *OrderService {
	return &OrderService{
		db:            db,
		cfg:           cfg,
		notifications: notifications,
	}
}

// PlaceOrder turns the user's cart into an order in a single transaction:
// price snapshots, stock decrements and the cart wipe either all happen or
// none do. Stock is checked with a guarded UPDATE, so two buyers racing for
// the last piece cannot both win.
func (s *OrderService) PlaceOrder(userID uuid.UUID, req *PlaceOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.
			Preload("Artwork").
			Where("user_id = ?", userID).
			Order("added_at ASC").
			Find(&cartItems).Error; err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var subtotal float64
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for i := range cartItems {
			item := &cartItems[i]
			if !item.Artwork.IsActive {
				return fmt.Errorf("%w: %s", ErrArtworkInactive, item.Artwork.Title)
			}

			// Guarded decrement; zero rows affected means someone else
			// took the stock first.
			res := tx.Model(&models.Artwork{}).
				Where("id = ? AND stock_quantity >= ?", item.ArtworkID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to reserve stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, item.Artwork.Title)
			}

			lineSubtotal := item.Subtotal()
			subtotal += lineSubtotal
			orderItems = append(orderItems, models.OrderItem{
				ArtworkID:    item.ArtworkID,
				ArtworkTitle: item.Artwork.Title,
				ArtworkPrice: item.Artwork.Price,
				Quantity:     item.Quantity,
				Subtotal:     lineSubtotal,
			})
		}

		orderNumber, err := s.reserveOrderNumber(tx)
		if err != nil {
			return err
		}

		order = &models.Order{
			OrderNumber:     orderNumber,
			UserID:          userID,
			Status:          models.OrderStatusPending,
			PaymentMethod:   req.PaymentMethod,
			UPIID:           req.UPIID,
			Subtotal:        subtotal,
			ShippingFee:     s.cfg.Payment.ShippingFee,
			TotalAmount:     subtotal + s.cfg.Payment.ShippingFee,
			ShippingName:    req.ShippingName,
			ShippingEmail:   req.ShippingEmail,
			ShippingPhone:   req.ShippingPhone,
			ShippingAddress: req.ShippingAddress,
			ShippingCity:    req.ShippingCity,
			ShippingState:   req.ShippingState,
			ShippingPincode: req.ShippingPincode,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		order.Items = orderItems

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"user_id":      userID,
		"total":        order.TotalAmount,
		"items":        len(order.Items),
	}).Info("Order placed")

	if s.notifications != nil {
		go s.notifications.SendOrderConfirmation(order)
	}

	return order, nil
}

func (s *OrderService) GetOrder(userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return &order, nil
}

func (s *OrderService) ListOrders(userID uuid.UUID, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	if err := utils.ApplyPagination(query.Preload("Items").Order("created_at DESC"), params).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := utils.CreatePaginationResult(orders, total, params)
	return &result, nil
}

// reserveOrderNumber generates candidate numbers until one is free. The
// check runs inside the checkout transaction, so a failed INSERT never has
// to abort it on PostgreSQL.
func (s *OrderService) reserveOrderNumber(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number, err := utils.GenerateOrderNumber()
		if err != nil {
			return "", fmt.Errorf("failed to generate order number: %w", err)
		}

		var count int64
		if err := tx.Model(&models.Order{}).Where("order_number = ?", number).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check order number: %w", err)
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not find a free order number after %d attempts", orderNumberAttempts)
}
