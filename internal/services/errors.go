// internal/services/errors.go
package services

import "errors"

// Sentinel errors the handlers map to HTTP outcomes. Not-found is an
// expected, handled branch everywhere in this flow, never a crash.
var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrProductNotFound = errors.New("product not found")
	ErrSetNotFound     = errors.New("set not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrOrderNotFound   = errors.New("order not found")

	// ErrProductInOrders guards referential integrity: a product referenced
	// by orders must not be deleted.
	ErrProductInOrders = errors.New("product is referenced by orders")

	// ErrOrderFinalized marks a repeated finalize of a terminal order. The
	// row is left untouched; callers treat it as a detectable no-op.
	ErrOrderFinalized = errors.New("order is already finalized")

	// ErrPresetNotRouted means a consult preset key is unmapped or its shop
	// is absent; callers fall back to the generic preset listing.
	ErrPresetNotRouted = errors.New("consult preset not routed to a shop")
)
