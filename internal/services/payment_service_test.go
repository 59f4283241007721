// internal/services/payment_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	payments *PaymentService
	customer *models.User
	order    *models.Order
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.payments = NewPaymentService(suite.db, newTestConfig())
	suite.customer = createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)

	suite.order = &models.Order{
		OrderNumber:     "VC-20260801-AB12CD34",
		UserID:          suite.customer.ID,
		Status:          models.OrderStatusPending,
		PaymentMethod:   models.PaymentMethodUPI,
		TotalAmount:     1246.0,
		ShippingName:    "Demo",
		ShippingEmail:   "demo@example.com",
		ShippingPhone:   "9876543210",
		ShippingAddress: "12 MG Road",
		ShippingCity:    "Jaipur",
		ShippingState:   "Rajasthan",
		ShippingPincode: "302001",
	}
	suite.Require().NoError(suite.db.Create(suite.order).Error)
}

func (suite *PaymentServiceTestSuite) TestUPILink() {
	link := suite.payments.upiLink(suite.order)
	suite.Contains(link, "upi://pay?")
	suite.Contains(link, "pa=visioncraft%40upi")
	suite.Contains(link, "am=1246.00")
	suite.Contains(link, "cu=INR")
	suite.Contains(link, "tn=VC-20260801-AB12CD34")
}

func (suite *PaymentServiceTestSuite) TestGenerateUPIQR() {
	png, err := suite.payments.GenerateUPIQR(suite.customer.ID, suite.order.ID)
	suite.Require().NoError(err)
	suite.NotEmpty(png)
	// PNG magic bytes
	suite.Equal([]byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func (suite *PaymentServiceTestSuite) TestGenerateUPIQROwnership() {
	other := createTestUser(suite.T(), suite.db, "art_lover", models.UserRoleCustomer)
	_, err := suite.payments.GenerateUPIQR(other.ID, suite.order.ID)
	suite.ErrorIs(err, ErrNotOrderOwner)
}

func (suite *PaymentServiceTestSuite) TestConfirmPaymentUPI() {
	order, err := suite.payments.ConfirmPayment(suite.customer.ID, suite.order.ID, &ConfirmPaymentRequest{
		PaymentReference: "UPI-TXN-12345",
	})
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusProcessing, order.Status)
	suite.Equal("UPI-TXN-12345", order.PaymentReference)

	// A processing order cannot be paid again
	_, err = suite.payments.ConfirmPayment(suite.customer.ID, suite.order.ID, &ConfirmPaymentRequest{
		PaymentReference: "UPI-TXN-67890",
	})
	suite.ErrorIs(err, ErrOrderNotPayable)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
