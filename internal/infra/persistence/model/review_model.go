package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Grade      *int      `gorm:"check:chk_reviews_grade,grade IS NULL OR (grade >= 1 AND grade <= 5)"`
	Comment    string    `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time

	Product  *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Customer *UserModel    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
