// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	users    *UserService
	customer *models.User
	seller   *models.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.users = NewUserService(suite.db)
	suite.customer = createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)
	suite.seller = createTestUser(suite.T(), suite.db, "sanjay_potter", models.UserRoleSeller)
}

func (suite *UserServiceTestSuite) TestUpdateProfile() {
	bio := "Collector of blue pottery"
	location := "Jaipur"

	user, err := suite.users.UpdateProfile(suite.customer.ID, &UpdateProfileRequest{
		Bio:      &bio,
		Location: &location,
	})
	suite.Require().NoError(err)
	suite.Equal(bio, user.Bio)
	suite.Equal(location, user.Location)

	// Unset fields stay untouched
	phone := "9876543210"
	user, err = suite.users.UpdateProfile(suite.customer.ID, &UpdateProfileRequest{Phone: &phone})
	suite.Require().NoError(err)

	var reloaded models.User
	suite.Require().NoError(suite.db.First(&reloaded, "id = ?", suite.customer.ID).Error)
	suite.Equal(bio, reloaded.Bio)
	suite.Equal(phone, reloaded.Phone)
}

func (suite *UserServiceTestSuite) TestTotalSpentCountsOnlyDelivered() {
	order := func(status models.OrderStatus, total float64, number string) {
		suite.Require().NoError(suite.db.Create(&models.Order{
			OrderNumber:     number,
			UserID:          suite.customer.ID,
			Status:          status,
			TotalAmount:     total,
			ShippingName:    "Demo",
			ShippingEmail:   "demo@example.com",
			ShippingPhone:   "9876543210",
			ShippingAddress: "12 MG Road",
			ShippingCity:    "Jaipur",
			ShippingState:   "Rajasthan",
			ShippingPincode: "302001",
		}).Error)
	}
	order(models.OrderStatusDelivered, 1246.0, "VC-20260801-AAAAAAAA")
	order(models.OrderStatusPending, 500.0, "VC-20260801-BBBBBBBB")
	order(models.OrderStatusDelivered, 448.0, "VC-20260801-CCCCCCCC")

	profile, err := suite.users.GetProfile(suite.customer.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), profile.OrderCount)
	suite.Equal(1694.0, profile.TotalSpent)
}

func (suite *UserServiceTestSuite) TestSellerAnalytics() {
	pot := createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 10)
	basket := createTestArtwork(suite.T(), suite.db, suite.seller, "Bamboo Basket", 499.0, 10)
	suite.Require().NoError(suite.db.Model(pot).UpdateColumn("views", 100).Error)
	suite.Require().NoError(suite.db.Model(basket).UpdateColumn("views", 60).Error)

	engagement := NewEngagementService(suite.db)
	_, err := engagement.ToggleLike(suite.customer.ID, pot.ID)
	suite.Require().NoError(err)

	// A sale of two pots and one basket
	order := &models.Order{
		OrderNumber:     "VC-20260801-DDDDDDDD",
		UserID:          suite.customer.ID,
		Status:          models.OrderStatusDelivered,
		TotalAmount:     1246.0,
		ShippingName:    "Demo",
		ShippingEmail:   "demo@example.com",
		ShippingPhone:   "9876543210",
		ShippingAddress: "12 MG Road",
		ShippingCity:    "Jaipur",
		ShippingState:   "Rajasthan",
		ShippingPincode: "302001",
	}
	suite.Require().NoError(suite.db.Create(order).Error)
	suite.Require().NoError(suite.db.Create(&[]models.OrderItem{
		{OrderID: order.ID, ArtworkID: pot.ID, ArtworkTitle: pot.Title, ArtworkPrice: 299.0, Quantity: 2, Subtotal: 598.0},
		{OrderID: order.ID, ArtworkID: basket.ID, ArtworkTitle: basket.Title, ArtworkPrice: 499.0, Quantity: 1, Subtotal: 499.0},
	}).Error)

	analytics, err := suite.users.GetSellerAnalytics(suite.seller.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), analytics.ArtworkCount)
	suite.Equal(int64(160), analytics.TotalViews)
	suite.Equal(int64(1), analytics.TotalLikes)
	suite.Equal(int64(24), analytics.ARTries) // 160 * 0.15
	suite.Equal(int64(3), analytics.UnitsSold)
	suite.Equal(1097.0, analytics.Revenue)
}

func (suite *UserServiceTestSuite) TestSellerAnalyticsRejectsCustomers() {
	_, err := suite.users.GetSellerAnalytics(suite.customer.ID)
	suite.ErrorIs(err, ErrSellerOnly)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
