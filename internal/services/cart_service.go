// internal/services/cart_service.go
package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/session"
)

// ProductResolver is the slice of the catalog the cart needs. CatalogService
// satisfies it; tests swap in a stub.
type ProductResolver interface {
	ProductByID(id uuid.UUID) (*models.Product, error)
}

// CartService maintains the per-visitor product→quantity map in the session
// store and prices it against the catalog on view.
type CartService struct {
	sessions session.Store
	products ProductResolver
	specials map[string]models.AdHocLineItem
}

func NewCartService(sessions session.Store, products ProductResolver, specials []models.AdHocLineItem) *CartService {
	byKey := make(map[string]models.AdHocLineItem, len(specials))
	for _, sp := range specials {
		byKey[sp.Key] = sp
	}
	return &CartService{
		sessions: sessions,
		products: products,
		specials: byKey,
	}
}

// CartLine is one priced cart entry: exactly one of Product or AdHoc is set.
type CartLine struct {
	Product  *models.Product       `json:"product,omitempty"`
	AdHoc    *models.AdHocLineItem `json:"ad_hoc,omitempty"`
	Key      string                `json:"key"`
	Quantity int                   `json:"quantity"`
	Subtotal int                   `json:"subtotal"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total int        `json:"total"`
}

// AddItem increments the quantity for the key, creating the entry at 1. The
// key is not checked against the catalog here; stale keys are dropped when
// the cart is viewed.
func (s *CartService) AddItem(ctx context.Context, visitorID, key string) error {
	cart, err := s.sessions.GetCart(ctx, visitorID)
	if err != nil {
		return err
	}
	cart[key]++
	return s.sessions.SaveCart(ctx, visitorID, cart)
}

// RemoveItem deletes the entry entirely (not a decrement). Removing a key
// that was never added is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, visitorID, key string) error {
	cart, err := s.sessions.GetCart(ctx, visitorID)
	if err != nil {
		return err
	}
	if _, ok := cart[key]; !ok {
		return nil
	}
	delete(cart, key)
	return s.sessions.SaveCart(ctx, visitorID, cart)
}

// ViewCart resolves every entry against the catalog and totals the lines.
// Entries whose product has since been deleted are skipped, not errors.
// Viewing never mutates the cart.
func (s *CartService) ViewCart(ctx context.Context, visitorID string) (*CartView, error) {
	cart, err := s.sessions.GetCart(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(cart))
	for key := range cart {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	view := &CartView{Items: []CartLine{}}
	for _, key := range keys {
		quantity := cart[key]

		if special, ok := s.specials[key]; ok {
			sp := special
			view.Items = append(view.Items, CartLine{
				AdHoc:    &sp,
				Key:      key,
				Quantity: quantity,
				Subtotal: sp.Price * quantity,
			})
			view.Total += sp.Price * quantity
			continue
		}

		id, err := uuid.Parse(key)
		if err != nil {
			// Unparseable keys behave like stale references.
			continue
		}

		product, err := s.products.ProductByID(id)
		if errors.Is(err, ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		subtotal := product.EffectivePrice() * quantity
		view.Items = append(view.Items, CartLine{
			Product:  product,
			Key:      key,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		view.Total += subtotal
	}

	return view, nil
}
