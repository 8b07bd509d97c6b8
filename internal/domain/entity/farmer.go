// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FarmerType categorizes the kind of operation a farmer runs.
// The value set mirrors the categories offered on the sign-up form.
type FarmerType string

const (
	FarmerTypeCrop         FarmerType = "crop"
	FarmerTypeLivestock    FarmerType = "livestock"
	FarmerTypeMixed        FarmerType = "mixed"
	FarmerTypeHorticulture FarmerType = "horticulture"
)

// Farmer is the single persisted account entity. The email is the
// natural lookup key and is unique across the store; PasswordDigest is
// the bcrypt output and is never the raw password.
type Farmer struct {
	ID             uuid.UUID  // Generated identifier for the record itself.
	Email          string     // Unique login identifier.
	PasswordDigest string     // Salted bcrypt digest of the password.
	Name           string     // Display name from the sign-up form.
	Phone          string     // Contact number, stored as given.
	Location       string     // Free-form location, stored as given.
	FarmerType     FarmerType // One of the sign-up categories.
	CreatedAt      time.Time  // Set once at creation, never mutated.
}

// VerifiedIdentity is what a successful sign-in yields. It carries no
// credential material; token issuance is a separate component that may
// consume it.
type VerifiedIdentity struct {
	FarmerID uuid.UUID
	Email    string
	Name     string
}
