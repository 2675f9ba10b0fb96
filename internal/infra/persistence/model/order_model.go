package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status       string          `gorm:"type:varchar(16);not null;default:'pending'"`
	DispatchDate time.Time       `gorm:"not null"`
	ArrivalDate  *time.Time
	FromField    string          `gorm:"type:varchar(255);not null;default:''"`
	ToField      string          `gorm:"type:varchar(255);not null;default:''"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt    time.Time

	Customer *UserModel       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Items    []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. TotalAmount is frozen at write time.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity    int             `gorm:"not null;default:1"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
