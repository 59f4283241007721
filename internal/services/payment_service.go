// internal/services/payment_service.go
package services

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/config"
	"github.com/visioncraft/visioncraft-backend/internal/models"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

// PaymentService covers the two payment rails: Stripe card payments and UPI
// via scan-to-pay QR codes. COD orders never touch it.
type PaymentService struct {
	db  *gorm.DB
	cfg *config.Config
}

type PaymentIntentResponse struct {
	ClientSecret   string `json:"client_secret"`
	PaymentID      string `json:"payment_id"`
	PublishableKey string `json:"publishable_key"`
	Status         string `json:"status"`
}

type ConfirmPaymentRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required,max=255"`
}

func NewPaymentService(db *gorm.DB, cfg *config.Config) *PaymentService {
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		db:  db,
		cfg: cfg,
	}
}

// CreatePaymentIntent opens a Stripe payment for a pending card order.
func (s *PaymentService) CreatePaymentIntent(userID, orderID uuid.UUID) (*PaymentIntentResponse, error) {
	order, err := s.getPayableOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	// Stripe wants the amount in the currency's smallest unit
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(order.TotalAmount * 100)),
		Currency: stripe.String(s.cfg.Payment.Currency),
	}
	params.AddMetadata("order_id", order.ID.String())
	params.AddMetadata("order_number", order.OrderNumber)
	params.AddMetadata("user_id", userID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret:   pi.ClientSecret,
		PaymentID:      pi.ID,
		PublishableKey: s.cfg.Payment.StripePublishableKey,
		Status:         string(pi.Status),
	}, nil
}

// ConfirmPayment records the payment reference and moves a pending order to
// processing. Card references are verified against Stripe; UPI references
// are the payer-reported transaction IDs and stored as-is.
func (s *PaymentService) ConfirmPayment(userID, orderID uuid.UUID, req *ConfirmPaymentRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.getPayableOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentMethod == models.PaymentMethodCard {
		pi, err := paymentintent.Get(req.PaymentReference, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to look up payment intent: %w", err)
		}
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			return nil, fmt.Errorf("payment intent %s is %s, not succeeded", pi.ID, pi.Status)
		}
	}

	updates := map[string]interface{}{
		"status":            models.OrderStatusProcessing,
		"payment_reference": req.PaymentReference,
	}
	if err := s.db.Model(order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}
	order.Status = models.OrderStatusProcessing
	order.PaymentReference = req.PaymentReference

	return order, nil
}

// GenerateUPIQR renders the order's UPI payment link as a PNG QR code.
func (s *PaymentService) GenerateUPIQR(userID, orderID uuid.UUID) ([]byte, error) {
	order, err := s.getPayableOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(s.upiLink(order), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode UPI QR: %w", err)
	}
	return png, nil
}

// upiLink builds a upi://pay deep link per the NPCI linking format.
func (s *PaymentService) upiLink(order *models.Order) string {
	values := url.Values{}
	values.Set("pa", s.cfg.Payment.UPIPayeeAddress)
	values.Set("pn", s.cfg.Payment.UPIPayeeName)
	values.Set("am", fmt.Sprintf("%.2f", order.TotalAmount))
	values.Set("cu", "INR")
	values.Set("tn", order.OrderNumber)
	return "upi://pay?" + values.Encode()
}

func (s *PaymentService) getPayableOrder(userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotPayable
	}
	return &order, nil
}
