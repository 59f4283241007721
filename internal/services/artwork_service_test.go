// internal/services/artwork_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

type ArtworkServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	artworks *ArtworkService
	seller   *models.User
}

func (suite *ArtworkServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.artworks = NewArtworkService(suite.db)
	suite.seller = createTestUser(suite.T(), suite.db, "sanjay_potter", models.UserRoleSeller)
}

func (suite *ArtworkServiceTestSuite) seedCatalog() (pot, basket, statue *models.Artwork) {
	pot = createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 15)
	basket = createTestArtwork(suite.T(), suite.db, suite.seller, "Bamboo Basket", 349.0, 10)
	suite.Require().NoError(suite.db.Model(basket).UpdateColumn("category", "Basketry").Error)
	basket.Category = "Basketry"
	statue = createTestArtwork(suite.T(), suite.db, suite.seller, "Brass Ganesha Statue", 1599.0, 5)
	suite.Require().NoError(suite.db.Model(statue).UpdateColumn("category", "Metalwork").Error)
	statue.Category = "Metalwork"
	return pot, basket, statue
}

func (suite *ArtworkServiceTestSuite) TestListFiltersByCategory() {
	suite.seedCatalog()

	artworks, err := suite.artworks.List(ArtworkListParams{Category: "Basketry"})
	suite.Require().NoError(err)
	suite.Require().Len(artworks, 1)
	suite.Equal("Bamboo Basket", artworks[0].Title)
}

func (suite *ArtworkServiceTestSuite) TestListExcludesInactive() {
	pot, _, _ := suite.seedCatalog()
	suite.Require().NoError(suite.db.Model(pot).UpdateColumn("is_active", false).Error)

	artworks, err := suite.artworks.List(ArtworkListParams{})
	suite.Require().NoError(err)
	suite.Len(artworks, 2)
	for _, a := range artworks {
		suite.NotEqual("Terracotta Pot", a.Title)
	}
}

func (suite *ArtworkServiceTestSuite) TestListSearchMatchesTitleAndArtist() {
	suite.seedCatalog()

	artworks, err := suite.artworks.List(ArtworkListParams{Query: "ganesha"})
	suite.Require().NoError(err)
	suite.Require().Len(artworks, 1)
	suite.Equal("Brass Ganesha Statue", artworks[0].Title)

	// artist_name matches every seeded artwork
	artworks, err = suite.artworks.List(ArtworkListParams{Query: "SANJAY"})
	suite.Require().NoError(err)
	suite.Len(artworks, 3)
}

func (suite *ArtworkServiceTestSuite) TestListSortsByPrice() {
	suite.seedCatalog()

	artworks, err := suite.artworks.List(ArtworkListParams{Sort: "price-low"})
	suite.Require().NoError(err)
	suite.Require().Len(artworks, 3)
	suite.Equal("Terracotta Pot", artworks[0].Title)
	suite.Equal("Brass Ganesha Statue", artworks[2].Title)

	artworks, err = suite.artworks.List(ArtworkListParams{Sort: "price-high"})
	suite.Require().NoError(err)
	suite.Equal("Brass Ganesha Statue", artworks[0].Title)
}

func (suite *ArtworkServiceTestSuite) TestListSortsByLikes() {
	pot, basket, _ := suite.seedCatalog()
	customer := createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)
	other := createTestUser(suite.T(), suite.db, "art_lover", models.UserRoleCustomer)

	engagement := NewEngagementService(suite.db)
	_, err := engagement.ToggleLike(customer.ID, basket.ID)
	suite.Require().NoError(err)
	_, err = engagement.ToggleLike(other.ID, basket.ID)
	suite.Require().NoError(err)
	_, err = engagement.ToggleLike(customer.ID, pot.ID)
	suite.Require().NoError(err)

	artworks, err := suite.artworks.List(ArtworkListParams{Sort: "likes"})
	suite.Require().NoError(err)
	suite.Require().Len(artworks, 3)
	suite.Equal("Bamboo Basket", artworks[0].Title)
	suite.Equal("Terracotta Pot", artworks[1].Title)
}

func (suite *ArtworkServiceTestSuite) TestListPriceRange() {
	suite.seedCatalog()

	artworks, err := suite.artworks.List(ArtworkListParams{PriceMin: 300, PriceMax: 400})
	suite.Require().NoError(err)
	suite.Require().Len(artworks, 1)
	suite.Equal("Bamboo Basket", artworks[0].Title)
}

func (suite *ArtworkServiceTestSuite) TestGetIncrementsViews() {
	pot, _, _ := suite.seedCatalog()

	detail, err := suite.artworks.Get(pot.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), detail.Artwork.Views)

	detail, err = suite.artworks.Get(pot.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), detail.Artwork.Views)
}

func (suite *ArtworkServiceTestSuite) TestGetRelatedSharesCategory() {
	pot, _, _ := suite.seedCatalog()
	vase := createTestArtwork(suite.T(), suite.db, suite.seller, "Blue Pottery Vase", 749.0, 11)

	detail, err := suite.artworks.Get(pot.ID)
	suite.Require().NoError(err)
	suite.Require().Len(detail.Related, 1)
	suite.Equal(vase.ID, detail.Related[0].ID)
}

func (suite *ArtworkServiceTestSuite) TestCreateRequiresSeller() {
	customer := createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)

	_, err := suite.artworks.Create(customer.ID, &CreateArtworkRequest{
		Title:    "Fake Listing",
		Price:    100,
		Category: "Pottery",
	})
	suite.ErrorIs(err, ErrSellerOnly)
}

func (suite *ArtworkServiceTestSuite) TestCreateDefaults() {
	artwork, err := suite.artworks.Create(suite.seller.ID, &CreateArtworkRequest{
		Title:    "Clay Diya Set",
		Price:    199,
		Category: "Pottery",
	})
	suite.Require().NoError(err)
	suite.Equal(10, artwork.StockQuantity)
	suite.True(artwork.IsActive)
	suite.Equal(suite.seller.Username, artwork.ArtistName)
}

func (suite *ArtworkServiceTestSuite) TestCreateSoldOutListing() {
	zero := 0
	artwork, err := suite.artworks.Create(suite.seller.ID, &CreateArtworkRequest{
		Title:         "Pre-Order Bronze Nataraja",
		Price:         4999,
		Category:      "Metalwork",
		StockQuantity: &zero,
	})
	suite.Require().NoError(err)

	var persisted models.Artwork
	suite.Require().NoError(suite.db.First(&persisted, "id = ?", artwork.ID).Error)
	suite.Equal(0, persisted.StockQuantity)
	suite.False(persisted.InStock())
}

func (suite *ArtworkServiceTestSuite) TestUpdateOwnership() {
	pot, _, _ := suite.seedCatalog()
	intruder := createTestUser(suite.T(), suite.db, "priya_woodcraft", models.UserRoleSeller)

	newPrice := 999.0
	_, err := suite.artworks.Update(intruder.ID, pot.ID, &UpdateArtworkRequest{Price: &newPrice})
	suite.ErrorIs(err, ErrNotArtworkOwner)

	updated, err := suite.artworks.Update(suite.seller.ID, pot.ID, &UpdateArtworkRequest{Price: &newPrice})
	suite.Require().NoError(err)
	suite.Equal(999.0, updated.Price)
}

func (suite *ArtworkServiceTestSuite) TestDeleteClearsCarts() {
	pot, _, _ := suite.seedCatalog()
	customer := createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)

	carts := NewCartService(suite.db, newTestConfig())
	_, err := carts.AddToCart(customer.ID, &AddToCartRequest{ArtworkID: pot.ID.String()})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.artworks.Delete(suite.seller.ID, pot.ID))

	_, err = suite.artworks.Get(pot.ID)
	suite.ErrorIs(err, ErrArtworkNotFound)

	var cartCount int64
	suite.db.Model(&models.CartItem{}).Where("artwork_id = ?", pot.ID).Count(&cartCount)
	suite.Equal(int64(0), cartCount)
}

func TestArtworkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArtworkServiceTestSuite))
}
