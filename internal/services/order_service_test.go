// internal/services/order_service_test.go
package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	orders   *OrderService
	carts    *CartService
	customer *models.User
	seller   *models.User
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	cfg := newTestConfig()
	suite.orders = NewOrderService(suite.db, cfg, nil)
	suite.carts = NewCartService(suite.db, cfg)
	suite.customer = createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)
	suite.seller = createTestUser(suite.T(), suite.db, "sanjay_potter", models.UserRoleSeller)
}

func (suite *OrderServiceTestSuite) shippingRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		PaymentMethod:   models.PaymentMethodCOD,
		ShippingName:    "Demo Customer",
		ShippingEmail:   "demo@example.com",
		ShippingPhone:   "9876543210",
		ShippingAddress: "12 MG Road",
		ShippingCity:    "Jaipur",
		ShippingState:   "Rajasthan",
		ShippingPincode: "302001",
	}
}

func (suite *OrderServiceTestSuite) addToCart(artwork *models.Artwork, quantity int) {
	_, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: artwork.ID.String(),
		Quantity:  quantity,
	})
	suite.Require().NoError(err)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder() {
	pot := createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 10)
	basket := createTestArtwork(suite.T(), suite.db, suite.seller, "Bamboo Basket", 499.0, 5)
	suite.addToCart(pot, 2)
	suite.addToCart(basket, 1)

	order, err := suite.orders.PlaceOrder(suite.customer.ID, suite.shippingRequest())
	suite.Require().NoError(err)

	suite.Equal(1097.0, order.Subtotal)
	suite.Equal(149.0, order.ShippingFee)
	suite.Equal(1246.0, order.TotalAmount)
	suite.Equal(models.OrderStatusPending, order.Status)
	suite.Len(order.Items, 2)

	// Each item snapshots the price at checkout
	byTitle := map[string]models.OrderItem{}
	for _, item := range order.Items {
		byTitle[item.ArtworkTitle] = item
	}
	suite.Equal(598.0, byTitle["Terracotta Pot"].Subtotal)
	suite.Equal(2, byTitle["Terracotta Pot"].Quantity)
	suite.Equal(499.0, byTitle["Bamboo Basket"].Subtotal)
	suite.Equal(299.0, byTitle["Terracotta Pot"].ArtworkPrice)

	// Stock is decremented
	var reloadedPot, reloadedBasket models.Artwork
	suite.Require().NoError(suite.db.First(&reloadedPot, "id = ?", pot.ID).Error)
	suite.Require().NoError(suite.db.First(&reloadedBasket, "id = ?", basket.ID).Error)
	suite.Equal(8, reloadedPot.StockQuantity)
	suite.Equal(4, reloadedBasket.StockQuantity)

	// Cart is cleared
	var cartCount int64
	suite.db.Model(&models.CartItem{}).Where("user_id = ?", suite.customer.ID).Count(&cartCount)
	suite.Equal(int64(0), cartCount)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderEmptyCart() {
	_, err := suite.orders.PlaceOrder(suite.customer.ID, suite.shippingRequest())
	suite.ErrorIs(err, ErrEmptyCart)

	var orderCount int64
	suite.db.Model(&models.Order{}).Count(&orderCount)
	suite.Equal(int64(0), orderCount)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderInsufficientStock() {
	pot := createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 1)
	suite.addToCart(pot, 3)

	_, err := suite.orders.PlaceOrder(suite.customer.ID, suite.shippingRequest())
	suite.ErrorIs(err, ErrInsufficientStock)
	suite.Contains(err.Error(), "Terracotta Pot")

	// The whole checkout rolled back: stock and cart are untouched
	var reloaded models.Artwork
	suite.Require().NoError(suite.db.First(&reloaded, "id = ?", pot.ID).Error)
	suite.Equal(1, reloaded.StockQuantity)

	var orderCount, itemCount, cartCount int64
	suite.db.Model(&models.Order{}).Count(&orderCount)
	suite.db.Model(&models.OrderItem{}).Count(&itemCount)
	suite.db.Model(&models.CartItem{}).Where("user_id = ?", suite.customer.ID).Count(&cartCount)
	suite.Equal(int64(0), orderCount)
	suite.Equal(int64(0), itemCount)
	suite.Equal(int64(1), cartCount)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderPartialStockRollsBack() {
	pot := createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 10)
	bell := createTestArtwork(suite.T(), suite.db, suite.seller, "Temple Bell", 459.0, 1)
	suite.addToCart(pot, 2)
	suite.addToCart(bell, 5)

	_, err := suite.orders.PlaceOrder(suite.customer.ID, suite.shippingRequest())
	suite.ErrorIs(err, ErrInsufficientStock)

	// The pot decrement from earlier in the transaction is undone too
	var reloaded models.Artwork
	suite.Require().NoError(suite.db.First(&reloaded, "id = ?", pot.ID).Error)
	suite.Equal(10, reloaded.StockQuantity)
}

func (suite *OrderServiceTestSuite) TestOrderNumberFormat() {
	pot := createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 10)
	suite.addToCart(pot, 1)

	order, err := suite.orders.PlaceOrder(suite.customer.ID, suite.shippingRequest())
	suite.Require().NoError(err)
	suite.Regexp(regexp.MustCompile(`^VC-\d{8}-[0-9A-F]{8}$`), order.OrderNumber)
}

func (suite *OrderServiceTestSuite) TestGetOrderOwnership() {
	pot := createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 10)
	suite.addToCart(pot, 1)

	order, err := suite.orders.PlaceOrder(suite.customer.ID, suite.shippingRequest())
	suite.Require().NoError(err)

	other := createTestUser(suite.T(), suite.db, "art_lover", models.UserRoleCustomer)
	_, err = suite.orders.GetOrder(other.ID, order.ID)
	suite.ErrorIs(err, ErrNotOrderOwner)

	loaded, err := suite.orders.GetOrder(suite.customer.ID, order.ID)
	suite.Require().NoError(err)
	suite.Equal(order.OrderNumber, loaded.OrderNumber)
	suite.Len(loaded.Items, 1)
}

func (suite *OrderServiceTestSuite) TestListOrders() {
	pot := createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 10)

	for i := 0; i < 3; i++ {
		suite.addToCart(pot, 1)
		_, err := suite.orders.PlaceOrder(suite.customer.ID, suite.shippingRequest())
		suite.Require().NoError(err)
	}

	result, err := suite.orders.ListOrders(suite.customer.ID, utilsPaginationDefaults())
	suite.Require().NoError(err)
	suite.Equal(int64(3), result.Total)

	orders, ok := result.Data.([]models.Order)
	suite.Require().True(ok)
	suite.Len(orders, 3)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
