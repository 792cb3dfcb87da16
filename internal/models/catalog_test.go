// internal/models/catalog_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductEffectivePrice(t *testing.T) {
	sale := 780

	p := &Product{Price: 980}
	assert.Equal(t, 980, p.EffectivePrice())

	p = &Product{Price: 980, IsSale: true, SalePrice: &sale}
	assert.Equal(t, 780, p.EffectivePrice())

	// Sale flag without a sale price falls back to the base price.
	p = &Product{Price: 980, IsSale: true}
	assert.Equal(t, 980, p.EffectivePrice())

	// A lingering sale price is ignored once the flag is off.
	p = &Product{Price: 980, IsSale: false, SalePrice: &sale}
	assert.Equal(t, 980, p.EffectivePrice())
}

func TestSetSlugDerivedFromName(t *testing.T) {
	s := &Set{Name: "Dinner Support Set"}
	assert.NoError(t, s.BeforeSave(nil))
	assert.Equal(t, "dinner-support-set", s.Slug)

	s = &Set{Name: "晩ごはん応援セット"}
	assert.NoError(t, s.BeforeSave(nil))
	assert.NotEmpty(t, s.Slug)

	// An explicit slug is never overwritten.
	s = &Set{Name: "Dinner Support Set", Slug: "bangohan"}
	assert.NoError(t, s.BeforeSave(nil))
	assert.Equal(t, "bangohan", s.Slug)
}

func TestStreetSlugDerivedFromName(t *testing.T) {
	street := &Street{Name: "Chuo Dori"}
	assert.NoError(t, street.BeforeSave(nil))
	assert.Equal(t, "chuo-dori", street.Slug)
}

func TestOrderStatusLifecycle(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.True(t, OrderStatusSuccess.Terminal())
	assert.True(t, OrderStatusCancel.Terminal())

	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusSuccess.Valid())
	assert.True(t, OrderStatusCancel.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
}
