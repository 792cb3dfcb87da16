// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okaimono/shotengai-backend/internal/i18n"
	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/services"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// POST /checkout/products/:id
func (h *CheckoutHandler) CheckoutProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	confirmation, err := h.checkoutService.CheckoutProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, confirmation)
}

// POST /checkout/sets/:slug
func (h *CheckoutHandler) CheckoutSet(c *gin.Context) {
	visitorID, exists := utils.GetVisitorIDFromContext(c)
	if !exists {
		utils.BadRequestResponse(c, "Missing visitor session", nil)
		return
	}

	confirmation, err := h.checkoutService.CheckoutSet(c.Request.Context(), visitorID, c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrSetNotFound) {
			utils.NotFoundResponse(c, "set")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, confirmation)
}

// POST /checkout/orders/:id/success and /checkout/orders/:id/cancel
func (h *CheckoutHandler) FinalizeOrder(outcome models.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			utils.BadRequestResponse(c, "Invalid order ID", nil)
			return
		}

		order, err := h.checkoutService.FinalizeOrder(id, outcome)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				utils.NotFoundResponse(c, "order")
			case errors.Is(err, services.ErrOrderFinalized):
				utils.ConflictResponse(c, i18n.T(lang, i18n.KeyOrderAlreadyFinal))
			default:
				utils.InternalErrorResponse(c, err.Error())
			}
			return
		}

		utils.SuccessResponse(c, gin.H{
			"message": i18n.T(lang, i18n.KeyOrderFinalized),
			"order":   order,
		})
	}
}

// POST /checkout/batch/success and /checkout/batch/cancel
func (h *CheckoutHandler) FinalizeBatch(outcome models.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)
		visitorID, exists := utils.GetVisitorIDFromContext(c)
		if !exists {
			utils.BadRequestResponse(c, "Missing visitor session", nil)
			return
		}

		result, err := h.checkoutService.FinalizeBatch(c.Request.Context(), visitorID, outcome)
		if err != nil {
			utils.InternalErrorResponse(c, err.Error())
			return
		}

		if result.Count == 0 {
			utils.SuccessResponseWithMeta(c, result, gin.H{
				"message": i18n.T(lang, i18n.KeyCheckoutBatchEmpty),
			})
			return
		}

		utils.SuccessResponse(c, result)
	}
}
