// internal/services/engagement_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

type EngagementServiceTestSuite struct {
	suite.Suite
	db         *gorm.DB
	engagement *EngagementService
	customer   *models.User
	seller     *models.User
	pot        *models.Artwork
}

func (suite *EngagementServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.engagement = NewEngagementService(suite.db)
	suite.customer = createTestUser(suite.T(), suite.db, "demo_customer", models.UserRoleCustomer)
	suite.seller = createTestUser(suite.T(), suite.db, "lakshmi_painter", models.UserRoleSeller)
	suite.pot = createTestArtwork(suite.T(), suite.db, suite.seller, "Terracotta Pot", 299.0, 10)
}

func (suite *EngagementServiceTestSuite) TestToggleLikeAlternates() {
	result, err := suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	suite.True(result.Liked)
	suite.Equal(int64(1), result.LikeCount)

	result, err = suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	suite.False(result.Liked)
	suite.Equal(int64(0), result.LikeCount)

	// Toggling back on works after a hard delete
	result, err = suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	suite.True(result.Liked)
	suite.Equal(int64(1), result.LikeCount)
}

func (suite *EngagementServiceTestSuite) TestLikeCountAcrossUsers() {
	other := createTestUser(suite.T(), suite.db, "art_lover", models.UserRoleCustomer)

	_, err := suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	result, err := suite.engagement.ToggleLike(other.ID, suite.pot.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), result.LikeCount)

	// One user unliking leaves the other's like in place
	result, err = suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	suite.False(result.Liked)
	suite.Equal(int64(1), result.LikeCount)
}

func (suite *EngagementServiceTestSuite) TestToggleLikeMissingArtwork() {
	_, err := suite.engagement.ToggleLike(suite.customer.ID, uuid.New())
	suite.ErrorIs(err, ErrArtworkNotFound)
}

func (suite *EngagementServiceTestSuite) TestToggleRSVPAlternates() {
	event := createTestEvent(suite.T(), suite.db, "Jaipur Craft Fair")

	result, err := suite.engagement.ToggleRSVP(suite.customer.ID, event.ID)
	suite.Require().NoError(err)
	suite.True(result.RSVPed)

	result, err = suite.engagement.ToggleRSVP(suite.customer.ID, event.ID)
	suite.Require().NoError(err)
	suite.False(result.RSVPed)

	result, err = suite.engagement.ToggleRSVP(suite.customer.ID, event.ID)
	suite.Require().NoError(err)
	suite.True(result.RSVPed)

	var count int64
	suite.db.Model(&models.EventRSVP{}).Where("event_id = ?", event.ID).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *EngagementServiceTestSuite) TestToggleRSVPMissingEvent() {
	_, err := suite.engagement.ToggleRSVP(suite.customer.ID, uuid.New())
	suite.ErrorIs(err, ErrEventNotFound)
}

func (suite *EngagementServiceTestSuite) TestListLikedArtworks() {
	basket := createTestArtwork(suite.T(), suite.db, suite.seller, "Bamboo Basket", 499.0, 10)

	_, err := suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	_, err = suite.engagement.ToggleLike(suite.customer.ID, basket.ID)
	suite.Require().NoError(err)

	artworks, err := suite.engagement.ListLikedArtworks(suite.customer.ID)
	suite.Require().NoError(err)
	suite.Len(artworks, 2)

	// Unliking removes it from the favorites list
	_, err = suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)

	artworks, err = suite.engagement.ListLikedArtworks(suite.customer.ID)
	suite.Require().NoError(err)
	suite.Require().Len(artworks, 1)
	suite.Equal("Bamboo Basket", artworks[0].Title)
}

func (suite *EngagementServiceTestSuite) TestIsLiked() {
	liked, err := suite.engagement.IsLiked(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	suite.False(liked)

	_, err = suite.engagement.ToggleLike(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)

	liked, err = suite.engagement.IsLiked(suite.customer.ID, suite.pot.ID)
	suite.Require().NoError(err)
	suite.True(liked)
}

func TestEngagementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EngagementServiceTestSuite))
}
