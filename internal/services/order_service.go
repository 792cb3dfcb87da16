// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/utils"
)

// OrderService is the ledger: it creates pending orders with snapshotted
// amounts and moves them to exactly one terminal state.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create records a pending order. The amount is the product's base price at
// creation time; sale prices are not applied on this path.
func (s *OrderService) Create(product *models.Product, amount int) (*models.Order, error) {
	order := &models.Order{
		ProductID: product.ID,
		Amount:    amount,
		Status:    models.OrderStatusPending,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.Product = *product
	return order, nil
}

// CreateAll creates one pending order per product inside a single
// transaction, so a mid-bundle failure leaves no stray pending orders.
func (s *OrderService) CreateAll(products []models.Product) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(products))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range products {
			order := models.Order{
				ProductID: p.ID,
				Amount:    p.Price,
				Status:    models.OrderStatusPending,
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("failed to create order for %s: %w", p.Name, err)
			}
			order.Product = p
			orders = append(orders, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// Finalize moves a pending order to success or cancel. Finalizing an order
// that is already terminal leaves it untouched and reports ErrOrderFinalized.
func (s *OrderService) Finalize(id uuid.UUID, outcome models.OrderStatus) (*models.Order, error) {
	if !outcome.Terminal() {
		return nil, fmt.Errorf("invalid finalize outcome %q", outcome)
	}

	var order models.Order
	if err := s.db.Preload("Product").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status.Terminal() {
		return &order, ErrOrderFinalized
	}

	if err := s.db.Model(&order).Update("status", outcome).Error; err != nil {
		return nil, fmt.Errorf("failed to finalize order: %w", err)
	}

	order.Status = outcome
	return &order, nil
}

// FinalizeAll bulk-updates the matching pending orders to the outcome and
// returns them with their post-update status. Orders already in a terminal
// state are left untouched.
func (s *OrderService) FinalizeAll(ids []uuid.UUID, outcome models.OrderStatus) ([]models.Order, error) {
	if !outcome.Terminal() {
		return nil, fmt.Errorf("invalid finalize outcome %q", outcome)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if err := s.db.Model(&models.Order{}).
		Where("id IN ? AND status = ?", ids, models.OrderStatusPending).
		Update("status", outcome).Error; err != nil {
		return nil, fmt.Errorf("failed to finalize orders: %w", err)
	}

	var orders []models.Order
	if err := s.db.Preload("Product").Where("id IN ?", ids).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch finalized orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Product").Preload("Product.Shop").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

type OrderSearchParams struct {
	utils.PaginationParams
	Status *models.OrderStatus
}

func (s *OrderService) List(params OrderSearchParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Preload("Product").Preload("Product.Shop")

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "amount", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}
