// internal/handlers/artwork.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/visioncraft/visioncraft-backend/internal/i18n"
	"github.com/visioncraft/visioncraft-backend/internal/services"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

type ArtworkHandler struct {
	artworkService    *services.ArtworkService
	engagementService *services.EngagementService
}

func NewArtworkHandler(artworkService *services.ArtworkService, engagementService *services.EngagementService) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService:    artworkService,
		engagementService: engagementService,
	}
}

// GET /artworks
func (h *ArtworkHandler) List(c *gin.Context) {
	priceMin, _ := strconv.ParseFloat(c.Query("price_min"), 64)
	priceMax, _ := strconv.ParseFloat(c.Query("price_max"), 64)
	inStock, _ := strconv.ParseBool(c.DefaultQuery("in_stock", "false"))

	params := services.ArtworkListParams{
		Category: c.Query("category"),
		State:    c.Query("state"),
		SellerID: c.Query("seller_id"),
		Query:    c.Query("q"),
		PriceMin: priceMin,
		PriceMax: priceMax,
		InStock:  inStock,
		Sort:     c.Query("sort"),
	}

	artworks, err := h.artworkService.List(params)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"artworks": artworks,
		"count":    len(artworks),
	})
}

// GET /artworks/:id
func (h *ArtworkHandler) Get(c *gin.Context) {
	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "artwork")
		return
	}

	detail, err := h.artworkService.Get(artworkID)
	if err != nil {
		if errors.Is(err, services.ErrArtworkNotFound) {
			utils.NotFoundResponse(c, "artwork")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	liked := false
	if userID, ok := currentUserID(c); ok {
		liked, _ = h.engagementService.IsLiked(userID, artworkID)
	}

	utils.SuccessResponse(c, gin.H{
		"artwork":    detail.Artwork,
		"like_count": detail.LikeCount,
		"ar_tries":   detail.ARTries,
		"related":    detail.Related,
		"liked":      liked,
	})
}

// POST /artworks
func (h *ArtworkHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	artwork, err := h.artworkService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrSellerOnly) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeySellerOnly))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyArtworkCreated),
		"artwork": artwork,
	})
}

// PUT /artworks/:id
func (h *ArtworkHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "artwork")
		return
	}

	var req services.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	artwork, err := h.artworkService.Update(userID, artworkID, &req)
	if err != nil {
		h.respondOwnershipError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyArtworkUpdated),
		"artwork": artwork,
	})
}

// DELETE /artworks/:id
func (h *ArtworkHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "artwork")
		return
	}

	if err := h.artworkService.Delete(userID, artworkID); err != nil {
		h.respondOwnershipError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyArtworkDeleted),
	})
}

// GET /artworks/mine
func (h *ArtworkHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	artworks, err := h.artworkService.ListBySeller(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"artworks": artworks,
		"count":    len(artworks),
	})
}

// POST /artworks/:id/like
func (h *ArtworkHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "artwork")
		return
	}

	result, err := h.engagementService.ToggleLike(userID, artworkID)
	if err != nil {
		if errors.Is(err, services.ErrArtworkNotFound) {
			utils.NotFoundResponse(c, "artwork")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, result)
}

// GET /artworks/liked
func (h *ArtworkHandler) ListLiked(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	artworks, err := h.engagementService.ListLikedArtworks(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"artworks": artworks,
		"count":    len(artworks),
	})
}

func (h *ArtworkHandler) respondOwnershipError(c *gin.Context, lang string, err error) {
	switch {
	case errors.Is(err, services.ErrArtworkNotFound):
		utils.NotFoundResponse(c, "artwork")
	case errors.Is(err, services.ErrNotArtworkOwner):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyArtworkNotOwner))
	default:
		utils.BadRequestResponse(c, err.Error(), nil)
	}
}
