// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Enums
type ShopCategory string

const (
	ShopCategoryVegetable ShopCategory = "vegetable"
	ShopCategoryMeat      ShopCategory = "meat"
	ShopCategoryFish      ShopCategory = "fish"
	ShopCategoryBread     ShopCategory = "bread"
	ShopCategoryDry       ShopCategory = "dry"
	ShopCategoryOther     ShopCategory = "other"
)

type EventCategory string

const (
	EventCategoryFood       EventCategory = "food"
	EventCategoryExperience EventCategory = "experience"
	EventCategoryKids       EventCategory = "kids"
	EventCategorySale       EventCategory = "sale"
	EventCategorySeason     EventCategory = "season"
	EventCategoryNight      EventCategory = "night"
	EventCategoryTasting    EventCategory = "tasting"
	EventCategoryRetro      EventCategory = "retro"
	EventCategoryRainy      EventCategory = "rainy"
	EventCategoryOther      EventCategory = "other"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusSuccess OrderStatus = "success"
	OrderStatusCancel  OrderStatus = "cancel"
)

// Terminal reports whether the status is an end state of the order
// lifecycle. Orders never leave a terminal state.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusSuccess || s == OrderStatusCancel
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSuccess, OrderStatusCancel:
		return true
	}
	return false
}
