// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agrosikkim/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new farmer account.
type SignUpInput struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	FarmerType string `json:"farmerType"`
}

// SignInInput defines the data required to authenticate.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SignUpOutput returns the newly created farmer's basic information.
type SignUpOutput struct {
	Farmer *entity.Farmer
}

// SignInOutput carries the verified identity of a successful sign-in.
// It contains no credential artifact; token issuance is a separate,
// separately-wired component.
type SignInOutput struct {
	Identity *entity.VerifiedIdentity
}

// AccountUsecase defines the registration and authentication operations.
// This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// SignUp derives a password digest and persists a new farmer record.
	// A duplicate email surfaces as a conflict error.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// SignIn verifies an email/password pair against the stored digest.
	// Unknown email and wrong password are indistinguishable to callers.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
}
