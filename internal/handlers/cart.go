// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/okaimono/shotengai-backend/internal/i18n"
	"github.com/okaimono/shotengai-backend/internal/services"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// POST /cart/items/:key
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	visitorID, exists := utils.GetVisitorIDFromContext(c)
	if !exists {
		utils.BadRequestResponse(c, "Missing visitor session", nil)
		return
	}

	if err := h.cartService.AddItem(c.Request.Context(), visitorID, c.Param("key")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
	})
}

// DELETE /cart/items/:key
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	visitorID, exists := utils.GetVisitorIDFromContext(c)
	if !exists {
		utils.BadRequestResponse(c, "Missing visitor session", nil)
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), visitorID, c.Param("key")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
	})
}

// GET /cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	visitorID, exists := utils.GetVisitorIDFromContext(c)
	if !exists {
		utils.BadRequestResponse(c, "Missing visitor session", nil)
		return
	}

	view, err := h.cartService.ViewCart(c.Request.Context(), visitorID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, view)
}
