// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/visioncraft/visioncraft-backend/internal/i18n"
	"github.com/visioncraft/visioncraft-backend/internal/services"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, cart)
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	item, err := h.cartService.AddToCart(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArtworkNotFound):
			utils.NotFoundResponse(c, "artwork")
		case errors.Is(err, services.ErrArtworkInactive), errors.Is(err, services.ErrArtworkNoStock):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyArtworkOutOfStock))
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
		"item":    item,
	})
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "cart.item")
		return
	}

	var req services.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	update, err := h.cartService.UpdateItem(userID, itemID, &req)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	message := i18n.KeyCartItemUpdated
	if update.Removed {
		message = i18n.KeyCartItemRemoved
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, message),
		"item":    update.Item,
		"removed": update.Removed,
	})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "cart.item")
		return
	}

	if err := h.cartService.RemoveItem(userID, itemID); err != nil {
		h.respondCartError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
	})
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCartItemNotFound):
		utils.NotFoundResponse(c, "cart.item")
	case errors.Is(err, services.ErrNotCartOwner):
		utils.ForbiddenResponse(c, "")
	default:
		utils.InternalErrorResponse(c, "")
	}
}
