// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "agrosikkim/internal/delivery/context"
	"agrosikkim/internal/domain/entity"
	domainerrors "agrosikkim/internal/domain/errors"
	"agrosikkim/internal/domain/repository"
	"agrosikkim/internal/domain/service"
	"agrosikkim/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager  repository.TransactionManager
	farmerRepo repository.FarmerRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	FarmerRepo repository.FarmerRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:  params.TxManager,
		farmerRepo: params.FarmerRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete farmer registration process.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting farmer registration", slog.String("email", input.Email))

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("failed to hash password during registration")
	}

	var registered *entity.Farmer

	// Check-then-insert runs in one transaction; the unique index on
	// farmers.email is the authoritative guard against the concurrent
	// duplicate-registration race.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		farmerRepo := repoFactory.FarmerRepo()

		_, findErr := farmerRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("farmer registration failed")
		}
		if !errors.Is(findErr, repository.ErrFarmerNotFound) {
			return errors.Wrap(findErr, "failed to look up farmer by email")
		}

		newFarmer := &entity.Farmer{
			Email:          input.Email,
			PasswordDigest: digest,
			Name:           input.Name,
			Phone:          input.Phone,
			Location:       input.Location,
			FarmerType:     entity.FarmerType(input.FarmerType),
		}

		if createErr := farmerRepo.Create(ctx, newFarmer); createErr != nil {
			return errors.Wrap(createErr, "failed to create farmer during registration")
		}
		registered = newFarmer

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute farmer registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		if isAppError(err) {
			return nil, err
		}

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("failed to execute farmer registration transaction")
	}

	srv.log(ctx).Debug("Farmer registered", slog.Any("farmerID", registered.ID))

	return &usecase.SignUpOutput{Farmer: registered}, nil
}

// SignIn verifies an email/password pair against the stored digest.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting farmer sign-in", slog.String("email", input.Email))

	// Single point lookup, no transaction needed.
	farmer, err := srv.farmerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			// Same outcome as a wrong password: the service never
			// discloses whether an email is registered.
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign-in failed")
		}
		srv.log(ctx).Error("Failed to look up farmer during sign-in", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrSignInFailed.WrapMessage("failed to look up farmer during sign-in")
	}

	// A record without a digest can never authenticate.
	if farmer.PasswordDigest == "" {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign-in failed")
	}

	// bcrypt comparison is CPU-bound and runs outside any transaction.
	if !srv.hasher.Check(input.Password, farmer.PasswordDigest) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign-in failed")
	}

	srv.log(ctx).Debug("Farmer signed in", slog.Any("farmerID", farmer.ID))

	return &usecase.SignInOutput{
		Identity: &entity.VerifiedIdentity{
			FarmerID: farmer.ID,
			Email:    farmer.Email,
			Name:     farmer.Name,
		},
	}, nil
}

// isAppError reports whether err already carries a client-facing status,
// so it should not be re-mapped to the generic registration failure.
func isAppError(err error) bool {
	var appErr domainerrors.AppError

	return errors.As(err, &appErr)
}
