// internal/handlers/consult.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/okaimono/shotengai-backend/internal/i18n"
	"github.com/okaimono/shotengai-backend/internal/services"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

type ConsultHandler struct {
	consultService *services.ConsultService
}

func NewConsultHandler(consultService *services.ConsultService) *ConsultHandler {
	return &ConsultHandler{
		consultService: consultService,
	}
}

// GET /consult/presets
func (h *ConsultHandler) GetPresets(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"presets": h.consultService.Presets(),
	})
}

// GET /consult/presets/:key
//
// An unmapped key or an absent shop is not an error: the response falls back
// to the generic preset listing so the client can offer a choice instead.
func (h *ConsultHandler) ResolvePreset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	resolved, err := h.consultService.Resolve(c.Param("key"))
	if err != nil {
		if errors.Is(err, services.ErrPresetNotRouted) {
			utils.SuccessResponse(c, gin.H{
				"message":  i18n.T(lang, i18n.KeyConsultPresetNotFound),
				"resolved": nil,
				"presets":  h.consultService.Presets(),
			})
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"resolved": resolved})
}

// POST /consult/compose
func (h *ConsultHandler) ComposeMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	composed, err := h.consultService.Compose(&req)
	if err != nil {
		if errors.Is(err, services.ErrShopNotFound) {
			utils.NotFoundResponse(c, "shop")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, composed)
}
