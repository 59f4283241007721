// internal/services/notification_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"

	"github.com/visioncraft/visioncraft-backend/internal/config"
	"github.com/visioncraft/visioncraft-backend/internal/models"
)

// NotificationService sends transactional email. Without SMTP configuration
// it degrades to logging, which keeps local development mail-server free.
type NotificationService struct {
	cfg *config.Config
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{cfg: cfg}
}

func (s *NotificationService) SendOrderConfirmation(order *models.Order) {
	subject := fmt.Sprintf("Your VisionCraft order %s", order.OrderNumber)
	body := s.orderConfirmationBody(order)

	if err := s.send(order.ShippingEmail, subject, body); err != nil {
		logrus.WithError(err).WithField("order_number", order.OrderNumber).
			Error("Failed to send order confirmation")
	}
}

func (s *NotificationService) send(to, subject, body string) error {
	if s.cfg.Email.SMTPHost == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email")
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.cfg.Email.FromName, s.cfg.Email.FromEmail); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(
		s.cfg.Email.SMTPHost,
		mail.WithPort(s.cfg.Email.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Email.SMTPUsername),
		mail.WithPassword(s.cfg.Email.SMTPPassword),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	return client.DialAndSend(msg)
}

func (s *NotificationService) orderConfirmationBody(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", order.ShippingName)
	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", order.OrderNumber)

	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %d x %s @ %.2f = %.2f\n",
			item.Quantity, item.ArtworkTitle, item.ArtworkPrice, item.Subtotal)
	}

	fmt.Fprintf(&b, "\nSubtotal: %.2f\n", order.Subtotal)
	fmt.Fprintf(&b, "Shipping: %.2f\n", order.ShippingFee)
	fmt.Fprintf(&b, "Total:    %.2f\n\n", order.TotalAmount)
	fmt.Fprintf(&b, "Shipping to:\n%s\n%s\n%s, %s %s\n\n",
		order.ShippingAddress, order.ShippingCity, order.ShippingState,
		order.ShippingPincode, order.ShippingPhone)
	b.WriteString("We will email you again when your order ships.\n\nVisionCraft Marketplace\n")

	return b.String()
}
