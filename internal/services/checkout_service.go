// internal/services/checkout_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/okaimono/shotengai-backend/internal/config"
	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/session"
)

// CatalogStore is the slice of the catalog the checkout flow consumes.
type CatalogStore interface {
	ProductByID(id uuid.UUID) (*models.Product, error)
	SetBySlug(slug string) (*models.Set, error)
}

// OrderLedger is the slice of the order service the checkout flow drives.
type OrderLedger interface {
	Create(product *models.Product, amount int) (*models.Order, error)
	CreateAll(products []models.Product) ([]models.Order, error)
	Finalize(id uuid.UUID, outcome models.OrderStatus) (*models.Order, error)
	FinalizeAll(ids []uuid.UUID, outcome models.OrderStatus) ([]models.Order, error)
}

// CheckoutService simulates a payment provider: it creates pending orders,
// groups bundle orders into a session-scoped batch, and flips statuses when
// the explicit success/cancel callbacks arrive.
type CheckoutService struct {
	catalog           CatalogStore
	orders            OrderLedger
	sessions          session.Store
	bundleTotalPolicy string
}

func NewCheckoutService(catalog CatalogStore, orders OrderLedger, sessions session.Store, cfg config.CheckoutConfig) *CheckoutService {
	policy := cfg.BundleTotalPolicy
	if policy == "" {
		policy = config.BundleTotalItemsSum
	}
	return &CheckoutService{
		catalog:           catalog,
		orders:            orders,
		sessions:          sessions,
		bundleTotalPolicy: policy,
	}
}

type Confirmation struct {
	Order   *models.Order   `json:"order"`
	Product *models.Product `json:"product"`
}

type BundleConfirmation struct {
	Set    *models.Set    `json:"set"`
	Orders []models.Order `json:"orders"`
	// Total follows the configured bundle total policy; ItemsTotal is
	// always the sum of the created orders' amounts.
	Total      int `json:"total"`
	ItemsTotal int `json:"items_total"`
}

type BatchResult struct {
	Orders []models.Order `json:"orders"`
	Count  int            `json:"count"`
	Total  int            `json:"total"`
}

// CheckoutProduct creates exactly one pending order for the product. The
// confirmation is bound to that order; finalize is a separate call.
func (s *CheckoutService) CheckoutProduct(productID uuid.UUID) (*Confirmation, error) {
	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Create(product, product.Price)
	if err != nil {
		return nil, err
	}

	return &Confirmation{Order: order, Product: product}, nil
}

// CheckoutSet creates one pending order per member product, each at that
// product's own price, and stores the batch in the visitor's session so the
// orders can be finalized as a unit.
func (s *CheckoutService) CheckoutSet(ctx context.Context, visitorID, slug string) (*BundleConfirmation, error) {
	set, err := s.catalog.SetBySlug(slug)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.CreateAll(set.Products)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(orders))
	itemsTotal := 0
	for i, o := range orders {
		ids[i] = o.ID.String()
		itemsTotal += o.Amount
	}

	if err := s.sessions.SaveBatch(ctx, visitorID, ids); err != nil {
		return nil, fmt.Errorf("failed to save checkout batch: %w", err)
	}

	total := itemsTotal
	if s.bundleTotalPolicy == config.BundleTotalSetPrice {
		total = set.Price
	}

	return &BundleConfirmation{
		Set:        set,
		Orders:     orders,
		Total:      total,
		ItemsTotal: itemsTotal,
	}, nil
}

// FinalizeOrder flips one order to the outcome.
func (s *CheckoutService) FinalizeOrder(orderID uuid.UUID, outcome models.OrderStatus) (*models.Order, error) {
	return s.orders.Finalize(orderID, outcome)
}

// FinalizeBatch pops the visitor's batch and bulk-finalizes its orders. The
// batch key is consumed on first read: a repeat call finds an empty batch
// and finalizes nothing, returning a zero total.
func (s *CheckoutService) FinalizeBatch(ctx context.Context, visitorID string, outcome models.OrderStatus) (*BatchResult, error) {
	rawIDs, err := s.sessions.PopBatch(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to pop checkout batch: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	result := &BatchResult{Orders: []models.Order{}}
	if len(ids) == 0 {
		return result, nil
	}

	orders, err := s.orders.FinalizeAll(ids, outcome)
	if err != nil {
		return nil, err
	}

	result.Orders = orders
	result.Count = len(orders)
	for _, o := range orders {
		result.Total += o.Amount
	}

	return result, nil
}
