// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agrosikkim/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFarmerNotFound is a domain-specific error returned when no record
// matches a lookup. Callers decide how much of that to disclose.
var ErrFarmerNotFound = errors.New("farmer not found")

// FarmerRepository defines the standard operations for farmer persistence.
// The application layer depends on this interface, not the concrete implementation.
type FarmerRepository interface {
	// FindByID retrieves a single farmer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error)

	// FindByEmail retrieves a single farmer by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Farmer, error)

	// Create persists a new farmer record. The store enforces email
	// uniqueness; a violation surfaces as a domain conflict error.
	Create(ctx context.Context, farmer *entity.Farmer) error
}
