// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmerModel mirrors the 'farmers' table. PostgreSQL generates UUIDs via gen_random_uuid().
type FarmerModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordDigest string    `gorm:"type:varchar(255);not null"`
	Name           string    `gorm:"type:varchar(100)"`
	Phone          string    `gorm:"type:varchar(32)"`
	Location       string    `gorm:"type:varchar(255)"`
	FarmerType     string    `gorm:"type:varchar(32)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerModel) TableName() string {
	return "farmers"
}
