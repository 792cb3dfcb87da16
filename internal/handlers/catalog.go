// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okaimono/shotengai-backend/internal/i18n"
	"github.com/okaimono/shotengai-backend/internal/services"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	eventService   *services.EventService
}

func NewCatalogHandler(catalogService *services.CatalogService, eventService *services.EventService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		eventService:   eventService,
	}
}

// GET /streets
func (h *CatalogHandler) GetStreets(c *gin.Context) {
	streets, err := h.catalogService.ListStreets()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"streets": streets})
}

// GET /shops
func (h *CatalogHandler) GetShops(c *gin.Context) {
	params := services.ShopSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		StreetSlug:       c.Query("street"),
		Category:         c.Query("category"),
		Search:           c.Query("search"),
	}

	shops, total, err := h.catalogService.SearchShops(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(shops, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /shops/:id
func (h *CatalogHandler) GetShop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid shop ID", nil)
		return
	}

	shop, err := h.catalogService.GetShop(id)
	if err != nil {
		if errors.Is(err, services.ErrShopNotFound) {
			utils.NotFoundResponse(c, "shop")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"shop": shop})
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Category:         c.Query("category"),
		Search:           c.Query("search"),
	}

	if sale := c.Query("sale"); sale != "" {
		onSale := sale == "true" || sale == "1"
		params.OnSale = &onSale
	}

	if shopID := c.Query("shop_id"); shopID != "" {
		id, err := uuid.Parse(shopID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid shop ID", nil)
			return
		}
		params.ShopID = &id
	}

	products, total, err := h.catalogService.SearchProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(products, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.ProductByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// DELETE /products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, services.ErrProductInOrders):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductInOrders))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

// GET /sets
func (h *CatalogHandler) GetSets(c *gin.Context) {
	sets, err := h.catalogService.ListActiveSets(0)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"sets": sets})
}

// GET /sets/:slug
func (h *CatalogHandler) GetSet(c *gin.Context) {
	set, err := h.catalogService.SetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrSetNotFound) {
			utils.NotFoundResponse(c, "set")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"set": set})
}

// GET /home
func (h *CatalogHandler) GetHome(c *gin.Context) {
	saleProducts, err := h.catalogService.SaleProducts(8)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	sets, err := h.catalogService.ListActiveSets(3)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	listing, err := h.eventService.List(services.EventListParams{Today: time.Now()})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	upcoming := listing.Spot
	if len(upcoming) > 4 {
		upcoming = upcoming[:4]
	}

	utils.SuccessResponse(c, gin.H{
		"sale_products":    saleProducts,
		"recommended_sets": sets,
		"upcoming_events":  upcoming,
	})
}
