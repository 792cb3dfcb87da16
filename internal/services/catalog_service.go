// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

// CatalogService implements the read-mostly catalog query contract the cart,
// checkout and consult flows consume.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListStreets() ([]models.Street, error) {
	var streets []models.Street
	if err := s.db.Order("name").Find(&streets).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch streets: %w", err)
	}
	return streets, nil
}

type ShopSearchParams struct {
	utils.PaginationParams
	StreetSlug string
	Category   string
	Search     string
}

func (s *CatalogService) SearchShops(params ShopSearchParams) ([]models.Shop, int64, error) {
	query := s.db.Model(&models.Shop{}).Preload("Street")

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.StreetSlug != "" {
		query = query.Joins("JOIN streets ON streets.id = shops.street_id").
			Where("streets.slug = ?", params.StreetSlug)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(shops.name) LIKE ? OR LOWER(shops.description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shops: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "category"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var shops []models.Shop
	if err := query.Find(&shops).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch shops: %w", err)
	}

	return shops, total, nil
}

func (s *CatalogService) GetShop(id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.Preload("Street").Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("products.name")
	}).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &shop, nil
}

// ShopByName resolves a shop by exact name, first match. The consult router
// relies on this being case-sensitive.
func (s *CatalogService) ShopByName(name string) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.Preload("Street").Where("name = ?", name).
		Order("created_at").First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &shop, nil
}

type ProductSearchParams struct {
	utils.PaginationParams
	ShopID   *uuid.UUID
	OnSale   *bool
	Category string
	Search   string
}

func (s *CatalogService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Shop").Preload("Shop.Street")

	if params.ShopID != nil {
		query = query.Where("shop_id = ?", *params.ShopID)
	}

	if params.OnSale != nil {
		query = query.Where("is_sale = ?", *params.OnSale)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "price"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *CatalogService) ProductByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Shop").Preload("Shop.Street").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// DeleteProduct refuses to remove a product any order still references, so
// orders never dangle.
func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	var orderCount int64
	if err := s.db.Model(&models.Order{}).
		Where("product_id = ?", id).
		Count(&orderCount).Error; err != nil {
		return fmt.Errorf("failed to check orders: %w", err)
	}

	if orderCount > 0 {
		return ErrProductInOrders
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *CatalogService) ListActiveSets(limit int) ([]models.Set, error) {
	query := s.db.Where("is_active = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var sets []models.Set
	if err := query.Find(&sets).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sets: %w", err)
	}
	return sets, nil
}

// SetBySlug loads an active set with its member products.
func (s *CatalogService) SetBySlug(slug string) (*models.Set, error) {
	var set models.Set
	if err := s.db.Preload("Products").Preload("Products.Shop").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&set).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &set, nil
}

func (s *CatalogService) SaleProducts(limit int) ([]models.Product, error) {
	query := s.db.Where("is_sale = ?", true).Preload("Shop").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sale products: %w", err)
	}
	return products, nil
}
