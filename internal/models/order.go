// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order is one purchased line item. The amount is snapshotted from the
// product at creation time and never recomputed.
type Order struct {
	BaseModel
	ProductID uuid.UUID   `json:"product_id" gorm:"type:uuid;not null;index"`
	Amount    int         `json:"amount" gorm:"not null"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(10);default:'pending';index"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
