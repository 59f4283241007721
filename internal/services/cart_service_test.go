// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

type CartServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	carts    *CartService
	customer *models.User
	seller   *models.User
	pot      *models.Artwork
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.carts = NewCartService(suite.db, newTestConfig())
	suite.customer = createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)
	suite.seller = createTestUser(suite.T(), suite.db, "priya_woodcraft", models.UserRoleSeller)
	suite.pot = createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 15)
}

func (suite *CartServiceTestSuite) TestAddToCart() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
		Quantity:  2,
	})
	suite.Require().NoError(err)
	suite.Equal(2, item.Quantity)
	suite.Equal(suite.pot.ID, item.ArtworkID)
}

func (suite *CartServiceTestSuite) TestAddToCartDefaultsQuantityToOne() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
	})
	suite.Require().NoError(err)
	suite.Equal(1, item.Quantity)
}

func (suite *CartServiceTestSuite) TestAddSameArtworkIncrements() {
	_, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
		Quantity:  2,
	})
	suite.Require().NoError(err)

	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
		Quantity:  3,
	})
	suite.Require().NoError(err)
	suite.Equal(5, item.Quantity)

	// Still a single row per (user, artwork)
	var count int64
	suite.db.Model(&models.CartItem{}).Where("user_id = ?", suite.customer.ID).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *CartServiceTestSuite) TestAddOutOfStockArtwork() {
	soldOut := createTestArtwork(suite.T(), suite.db, suite.seller, "Cane Chair", 3299.0, 0)

	_, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: soldOut.ID.String(),
	})
	suite.ErrorIs(err, ErrArtworkNoStock)
}

func (suite *CartServiceTestSuite) TestAddInactiveArtwork() {
	suite.Require().NoError(suite.db.Model(suite.pot).UpdateColumn("is_active", false).Error)

	_, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
	})
	suite.ErrorIs(err, ErrArtworkInactive)
}

func (suite *CartServiceTestSuite) TestUpdateItemQuantity() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
		Quantity:  2,
	})
	suite.Require().NoError(err)

	update, err := suite.carts.UpdateItem(suite.customer.ID, item.ID, &UpdateCartItemRequest{Quantity: 7})
	suite.Require().NoError(err)
	suite.False(update.Removed)
	suite.Equal(7, update.Item.Quantity)
}

func (suite *CartServiceTestSuite) TestUpdateItemZeroQuantityRemoves() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
		Quantity:  2,
	})
	suite.Require().NoError(err)

	update, err := suite.carts.UpdateItem(suite.customer.ID, item.ID, &UpdateCartItemRequest{Quantity: 0})
	suite.Require().NoError(err)
	suite.True(update.Removed)

	var count int64
	suite.db.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *CartServiceTestSuite) TestUpdateItemNegativeQuantityRemoves() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
	})
	suite.Require().NoError(err)

	update, err := suite.carts.UpdateItem(suite.customer.ID, item.ID, &UpdateCartItemRequest{Quantity: -5})
	suite.Require().NoError(err)
	suite.True(update.Removed)
}

func (suite *CartServiceTestSuite) TestUpdateItemQuantityCap() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
	})
	suite.Require().NoError(err)

	_, err = suite.carts.UpdateItem(suite.customer.ID, item.ID, &UpdateCartItemRequest{Quantity: 100})
	suite.ErrorContains(err, "validation failed")
}

func (suite *CartServiceTestSuite) TestUpdateItemOwnership() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
		Quantity:  2,
	})
	suite.Require().NoError(err)

	other := createTestUser(suite.T(), suite.db, "art_lover", models.UserRoleCustomer)
	_, err = suite.carts.UpdateItem(other.ID, item.ID, &UpdateCartItemRequest{Quantity: 9})
	suite.ErrorIs(err, ErrNotCartOwner)

	// Item is unchanged
	var reloaded models.CartItem
	suite.Require().NoError(suite.db.First(&reloaded, "id = ?", item.ID).Error)
	suite.Equal(2, reloaded.Quantity)
}

func (suite *CartServiceTestSuite) TestRemoveItem() {
	item, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.carts.RemoveItem(suite.customer.ID, item.ID))

	err = suite.carts.RemoveItem(suite.customer.ID, item.ID)
	suite.ErrorIs(err, ErrCartItemNotFound)
}

func (suite *CartServiceTestSuite) TestGetCartTotals() {
	basket := createTestArtwork(suite.T(), suite.db, suite.seller, "Bamboo Basket", 499.0, 10)

	_, err := suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: suite.pot.ID.String(),
		Quantity:  2,
	})
	suite.Require().NoError(err)
	_, err = suite.carts.AddToCart(suite.customer.ID, &AddToCartRequest{
		ArtworkID: basket.ID.String(),
	})
	suite.Require().NoError(err)

	cart, err := suite.carts.GetCart(suite.customer.ID)
	suite.Require().NoError(err)
	suite.Len(cart.Items, 2)
	suite.Equal(3, cart.ItemCount)
	suite.Equal(1097.0, cart.Subtotal)
	suite.Equal(149.0, cart.ShippingFee)
	suite.Equal(1246.0, cart.Total)
}

func (suite *CartServiceTestSuite) TestGetCartEmptyWaivesShipping() {
	cart, err := suite.carts.GetCart(suite.customer.ID)
	suite.Require().NoError(err)
	suite.Empty(cart.Items)
	suite.Equal(0.0, cart.Subtotal)
	suite.Equal(0.0, cart.ShippingFee)
	suite.Equal(0.0, cart.Total)
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
