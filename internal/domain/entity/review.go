package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinGrade = 1
	MaxGrade = 5
)

// Review is a customer's opinion of a product.
type Review struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product"`
	CustomerID uuid.UUID `json:"customer"`
	Grade      *int      `json:"grade"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidGrade reports whether a grade is absent or within [MinGrade, MaxGrade].
func ValidGrade(grade *int) bool {
	return grade == nil || (*grade >= MinGrade && *grade <= MaxGrade)
}
