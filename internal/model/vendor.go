package model

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a selling business on the platform. Vendors start unapproved;
// only approved and active vendors appear in buyer-facing listings.
type Vendor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	ContactPerson string    `gorm:"not null"`
	Phone         string    `gorm:"not null"`
	Email         string    `gorm:"not null"`
	Address       string    `gorm:"not null"`
	BusinessType  string    `gorm:"not null;default:'Restaurant'"`
	Description   *string
	IsActive      bool `gorm:"not null;default:true"`
	IsApproved    bool `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
