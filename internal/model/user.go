package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleBuyer  = "buyer"
	RoleStaff  = "staff"
)

// User stores platform accounts with role-based access.
// Vendor-side users carry a VendorID linking them to their vendor record.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	VendorID     *uuid.UUID `gorm:"type:uuid;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Vendor *Vendor `gorm:"foreignKey:VendorID"`
}
