// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Street is one shopping street of the district.
type Street struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug string `json:"slug" gorm:"size:120;not null;uniqueIndex"`

	Shops []Shop `json:"shops,omitempty" gorm:"foreignKey:StreetID"`
}

func (s *Street) BeforeSave(tx *gorm.DB) error {
	if s.Slug == "" {
		s.Slug = slug.Make(s.Name)
	}
	return nil
}

type Shop struct {
	BaseModel
	StreetID    uuid.UUID    `json:"street_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_shops_street_name"`
	Name        string       `json:"name" gorm:"size:120;not null;uniqueIndex:idx_shops_street_name;index"`
	Description string       `json:"description" gorm:"type:text"`
	Category    ShopCategory `json:"category" gorm:"type:varchar(20);default:'other';index"`
	LineURL     *string      `json:"line_url,omitempty" gorm:"size:255"`
	Latitude    *float64     `json:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty"`

	Street   Street    `json:"street,omitempty" gorm:"foreignKey:StreetID"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:ShopID"`
}

type Product struct {
	BaseModel
	ShopID   *uuid.UUID   `json:"shop_id,omitempty" gorm:"type:uuid;index"`
	Name     string       `json:"name" gorm:"size:100;not null"`
	Price    int          `json:"price" gorm:"not null"`
	Category ShopCategory `json:"category" gorm:"type:varchar(20);default:'other';index"`
	IsSale   bool         `json:"is_sale" gorm:"default:false;index"`
	// SalePrice should be set whenever IsSale is true; pricing falls back
	// to Price when it is missing.
	SalePrice *int `json:"sale_price,omitempty"`

	Shop *Shop `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
}

// EffectivePrice is the price a cart line pays: the sale price while the
// product is on sale and one is set, the regular price otherwise.
func (p *Product) EffectivePrice() int {
	if p.IsSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// Set is a curated bundle of products sold together with its own price.
type Set struct {
	BaseModel
	Name        string `json:"name" gorm:"size:120;not null"`
	Slug        string `json:"slug" gorm:"size:140;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Price       int    `json:"price" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true;index"`

	Products []Product `json:"products,omitempty" gorm:"many2many:set_products"`
}

func (s *Set) BeforeSave(tx *gorm.DB) error {
	if s.Slug == "" {
		s.Slug = slug.Make(s.Name)
	}
	return nil
}

// AdHocLineItem is a cart line that does not come from the catalog, such as
// the shopkeeper's off-menu special. It is registered on the cart service by
// key instead of being faked as a Product row.
type AdHocLineItem struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}
