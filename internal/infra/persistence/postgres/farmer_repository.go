// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"agrosikkim/internal/domain/entity"
	domainerrors "agrosikkim/internal/domain/errors"
	"agrosikkim/internal/domain/repository"
	"agrosikkim/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmerRepository implements the domain's FarmerRepository interface using GORM.
type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository is the constructor for farmerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewFarmerRepository(db *gorm.DB) repository.FarmerRepository {
	return &farmerRepository{db: db}
}

// FindByID retrieves a single farmer account by its unique ID.
func (repo *farmerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error) {
	var farmerM model.FarmerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&farmerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer by id")
	}

	return toFarmerDomain(&farmerM), nil
}

// FindByEmail retrieves a single farmer account by its email address.
// The email column carries a unique index, so at most one row matches.
func (repo *farmerRepository) FindByEmail(ctx context.Context, email string) (*entity.Farmer, error) {
	var farmerM model.FarmerModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&farmerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer by email")
	}

	return toFarmerDomain(&farmerM), nil
}

// Create persists a new farmer account. A unique-index violation on the
// email column is reported as the domain's conflict error so callers can
// map it to the duplicate-registration response.
func (repo *farmerRepository) Create(ctx context.Context, farmer *entity.Farmer) error {
	farmerM := fromFarmerDomain(farmer)

	if err := repo.db.WithContext(ctx).Create(farmerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create farmer")
	}

	// Carry back the generated ID and timestamp.
	farmer.ID = farmerM.ID
	farmer.CreatedAt = farmerM.CreatedAt

	return nil
}

// toFarmerDomain maps the persistence model back to a pure domain entity.
func toFarmerDomain(m *model.FarmerModel) *entity.Farmer {
	return &entity.Farmer{
		ID:             m.ID,
		Email:          m.Email,
		PasswordDigest: m.PasswordDigest,
		Name:           m.Name,
		Phone:          m.Phone,
		Location:       m.Location,
		FarmerType:     entity.FarmerType(m.FarmerType),
		CreatedAt:      m.CreatedAt,
	}
}

// fromFarmerDomain maps a domain entity to its GORM persistence model.
func fromFarmerDomain(f *entity.Farmer) *model.FarmerModel {
	return &model.FarmerModel{
		ID:             f.ID,
		Email:          f.Email,
		PasswordDigest: f.PasswordDigest,
		Name:           f.Name,
		Phone:          f.Phone,
		Location:       f.Location,
		FarmerType:     string(f.FarmerType),
		CreatedAt:      f.CreatedAt,
	}
}
