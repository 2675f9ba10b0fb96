package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(150);not null;default:''"`
	LastName     string    `gorm:"type:varchar(150);not null;default:''"`
	MiddleName   string    `gorm:"type:varchar(150);not null;default:''"`
	Phone        *string   `gorm:"type:varchar(32);uniqueIndex"`
	Gender       string    `gorm:"type:varchar(16);not null;default:''"`
	Birthday     *time.Time
	Address      string `gorm:"type:varchar(255);not null;default:''"`
	Avatar       string `gorm:"type:varchar(512);not null;default:''"`
	IsStaff      bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null"`
	DateJoined   time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
