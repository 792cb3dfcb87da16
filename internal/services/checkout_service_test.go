// internal/services/checkout_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okaimono/shotengai-backend/internal/config"
	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/session"
)

type fakeCatalog struct {
	products map[uuid.UUID]*models.Product
	sets     map[string]*models.Set
}

func (f *fakeCatalog) ProductByID(id uuid.UUID) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, ErrProductNotFound
}

func (f *fakeCatalog) SetBySlug(slug string) (*models.Set, error) {
	if s, ok := f.sets[slug]; ok {
		return s, nil
	}
	return nil, ErrSetNotFound
}

// fakeLedger keeps orders in memory with the same lifecycle rules as the
// database-backed service.
type fakeLedger struct {
	orders map[uuid.UUID]*models.Order
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{orders: map[uuid.UUID]*models.Order{}}
}

func (f *fakeLedger) Create(product *models.Product, amount int) (*models.Order, error) {
	order := &models.Order{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProductID: product.ID,
		Amount:    amount,
		Status:    models.OrderStatusPending,
	}
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeLedger) CreateAll(products []models.Product) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(products))
	for i := range products {
		o, err := f.Create(&products[i], products[i].Price)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

func (f *fakeLedger) Finalize(id uuid.UUID, outcome models.OrderStatus) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if order.Status.Terminal() {
		return order, ErrOrderFinalized
	}
	order.Status = outcome
	return order, nil
}

func (f *fakeLedger) FinalizeAll(ids []uuid.UUID, outcome models.OrderStatus) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		if order, ok := f.orders[id]; ok {
			if !order.Status.Terminal() {
				order.Status = outcome
			}
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func newCheckoutFixture() (*CheckoutService, *fakeCatalog, *fakeLedger) {
	p1 := testProduct("刺身盛り合わせ", 980)
	p2 := testProduct("ほうれん草", 160)
	p3 := testProduct("コロッケ", 120)
	catalog := &fakeCatalog{
		products: map[uuid.UUID]*models.Product{
			p1.ID: p1, p2.ID: p2, p3.ID: p3,
		},
		sets: map[string]*models.Set{
			"dinner-set": {
				BaseModel: models.BaseModel{ID: uuid.New()},
				Name:      "晩ごはん応援セット",
				Slug:      "dinner-set",
				Price:     1280,
				IsActive:  true,
				Products:  []models.Product{*p1, *p2, *p3},
			},
		},
	}
	ledger := newFakeLedger()
	svc := NewCheckoutService(catalog, ledger, session.NewMemoryStore(), config.CheckoutConfig{
		BundleTotalPolicy: config.BundleTotalItemsSum,
	})
	return svc, catalog, ledger
}

func TestCheckoutProductCreatesPendingOrder(t *testing.T) {
	svc, catalog, _ := newCheckoutFixture()

	var productID uuid.UUID
	for id := range catalog.products {
		productID = id
		break
	}

	confirmation, err := svc.CheckoutProduct(productID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, confirmation.Order.Status)
	assert.Equal(t, catalog.products[productID].Price, confirmation.Order.Amount)
	assert.Equal(t, productID, confirmation.Product.ID)
}

func TestCheckoutProductUnknownID(t *testing.T) {
	svc, _, _ := newCheckoutFixture()

	_, err := svc.CheckoutProduct(uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCheckoutSetCreatesOrderPerProduct(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCheckoutFixture()

	confirmation, err := svc.CheckoutSet(ctx, "visitor-1", "dinner-set")
	require.NoError(t, err)
	require.Len(t, confirmation.Orders, 3)

	for _, o := range confirmation.Orders {
		assert.Equal(t, models.OrderStatusPending, o.Status)
	}
	assert.Equal(t, 980+160+120, confirmation.ItemsTotal)
	assert.Equal(t, confirmation.ItemsTotal, confirmation.Total)
}

func TestCheckoutSetSetPricePolicy(t *testing.T) {
	ctx := context.Background()
	_, catalog, ledger := newCheckoutFixture()
	svc := NewCheckoutService(catalog, ledger, session.NewMemoryStore(), config.CheckoutConfig{
		BundleTotalPolicy: config.BundleTotalSetPrice,
	})

	confirmation, err := svc.CheckoutSet(ctx, "visitor-1", "dinner-set")
	require.NoError(t, err)
	assert.Equal(t, 1280, confirmation.Total)
	assert.Equal(t, 980+160+120, confirmation.ItemsTotal)
}

func TestFinalizeBatchConsumesBatchOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, ledger := newCheckoutFixture()

	confirmation, err := svc.CheckoutSet(ctx, "visitor-1", "dinner-set")
	require.NoError(t, err)

	result, err := svc.FinalizeBatch(ctx, "visitor-1", models.OrderStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, confirmation.ItemsTotal, result.Total)
	for _, o := range result.Orders {
		assert.Equal(t, models.OrderStatusSuccess, o.Status)
	}

	// The batch key is gone after the first read.
	again, err := svc.FinalizeBatch(ctx, "visitor-1", models.OrderStatusSuccess)
	require.NoError(t, err)
	assert.Zero(t, again.Count)
	assert.Zero(t, again.Total)
	assert.Empty(t, again.Orders)

	// All ledger orders stay in their terminal state.
	for _, o := range ledger.orders {
		assert.Equal(t, models.OrderStatusSuccess, o.Status)
	}
}

func TestFinalizeBatchCancel(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCheckoutFixture()

	_, err := svc.CheckoutSet(ctx, "visitor-1", "dinner-set")
	require.NoError(t, err)

	result, err := svc.FinalizeBatch(ctx, "visitor-1", models.OrderStatusCancel)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	for _, o := range result.Orders {
		assert.Equal(t, models.OrderStatusCancel, o.Status)
	}
}

func TestFinalizeBatchLeavesTerminalOrdersAlone(t *testing.T) {
	ctx := context.Background()
	svc, _, ledger := newCheckoutFixture()

	confirmation, err := svc.CheckoutSet(ctx, "visitor-1", "dinner-set")
	require.NoError(t, err)

	// One bundle order gets finalized on its own before the batch callback.
	first := confirmation.Orders[0]
	_, err = svc.FinalizeOrder(first.ID, models.OrderStatusSuccess)
	require.NoError(t, err)

	result, err := svc.FinalizeBatch(ctx, "visitor-1", models.OrderStatusCancel)
	require.NoError(t, err)
	require.Equal(t, 3, result.Count)

	assert.Equal(t, models.OrderStatusSuccess, ledger.orders[first.ID].Status)
	for id, o := range ledger.orders {
		if id == first.ID {
			continue
		}
		assert.Equal(t, models.OrderStatusCancel, o.Status)
	}
}

func TestFinalizeBatchIsVisitorScoped(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCheckoutFixture()

	_, err := svc.CheckoutSet(ctx, "visitor-a", "dinner-set")
	require.NoError(t, err)

	result, err := svc.FinalizeBatch(ctx, "visitor-b", models.OrderStatusSuccess)
	require.NoError(t, err)
	assert.Zero(t, result.Count)
}

func TestFinalizeOrderSecondCallConflicts(t *testing.T) {
	svc, catalog, _ := newCheckoutFixture()

	var productID uuid.UUID
	for id := range catalog.products {
		productID = id
		break
	}

	confirmation, err := svc.CheckoutProduct(productID)
	require.NoError(t, err)

	order, err := svc.FinalizeOrder(confirmation.Order.ID, models.OrderStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusSuccess, order.Status)

	// A repeat callback is detectable and does not change the state.
	order, err = svc.FinalizeOrder(confirmation.Order.ID, models.OrderStatusCancel)
	assert.ErrorIs(t, err, ErrOrderFinalized)
	assert.Equal(t, models.OrderStatusSuccess, order.Status)
}
