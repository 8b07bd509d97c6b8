package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrosikkim/internal/domain/entity"
	domainerrors "agrosikkim/internal/domain/errors"
	"agrosikkim/internal/domain/repository"
	"agrosikkim/internal/usecase"
)

// memoryFarmerRepo is an in-memory FarmerRepository keyed by email.
type memoryFarmerRepo struct {
	byEmail   map[string]*entity.Farmer
	findErr   error
	createErr error
}

func newMemoryFarmerRepo() *memoryFarmerRepo {
	return &memoryFarmerRepo{byEmail: map[string]*entity.Farmer{}}
}

func (r *memoryFarmerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Farmer, error) {
	for _, farmer := range r.byEmail {
		if farmer.ID == id {
			return farmer, nil
		}
	}

	return nil, repository.ErrFarmerNotFound
}

func (r *memoryFarmerRepo) FindByEmail(_ context.Context, email string) (*entity.Farmer, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	farmer, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrFarmerNotFound
	}

	return farmer, nil
}

func (r *memoryFarmerRepo) Create(_ context.Context, farmer *entity.Farmer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byEmail[farmer.Email]; ok {
		return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
	}
	farmer.ID = uuid.New()
	r.byEmail[farmer.Email] = farmer

	return nil
}

// passthroughTxManager runs the callback directly against the backing repo.
type passthroughTxManager struct {
	repo *memoryFarmerRepo
}

func (tm *passthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

func (tm *passthroughTxManager) FarmerRepo() repository.FarmerRepository {
	return tm.repo
}

// fakeHasher derives a reversible marker digest so tests can assert the
// plaintext never reaches the store.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "digest:" + password, nil
}

func (h *fakeHasher) Check(password, digest string) bool {
	return digest == "digest:"+password
}

type accountServiceFixtures struct {
	service usecase.AccountUsecase
	repo    *memoryFarmerRepo
	hasher  *fakeHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	repo := newMemoryFarmerRepo()
	hasher := &fakeHasher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:  &passthroughTxManager{repo: repo},
		FarmerRepo: repo,
		Hasher:     hasher,
		Logger:     logger,
	})

	return accountServiceFixtures{service: service, repo: repo, hasher: hasher}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Name:       "Tashi Bhutia",
		Email:      "tashi@example.com",
		Password:   "plaintext-password",
		Phone:      "+91 900000000",
		Location:   "Gangtok",
		FarmerType: "mixed",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Farmer)
	assert.NotEqual(t, uuid.Nil, output.Farmer.ID)

	stored := fx.repo.byEmail["tashi@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, entity.FarmerTypeMixed, stored.FarmerType)

	// The store holds a digest, never the password itself.
	assert.NotEqual(t, "plaintext-password", stored.PasswordDigest)
	assert.True(t, fx.hasher.Check("plaintext-password", stored.PasswordDigest))
}

func TestAccountService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.SignUpInput{Email: "dup@example.com", Password: "pw-one"}
	_, err := fx.service.SignUp(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "dup@example.com", Password: "pw-two"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))

	// The original record survives the rejected attempt.
	assert.True(t, fx.hasher.Check("pw-one", fx.repo.byEmail["dup@example.com"].PasswordDigest))
}

func TestAccountService_SignUp_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	fx.hasher.hashErr = errors.New("bcrypt exploded")

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "tashi@example.com",
		Password: "pw",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRegistrationFailed))
	assert.Empty(t, fx.repo.byEmail)
}

func TestAccountService_SignUp_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repo.findErr = errors.New("connection refused")

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "tashi@example.com",
		Password: "pw",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRegistrationFailed))
}

func TestAccountService_SignIn_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Name:     "Pema Lepcha",
		Email:    "pema@example.com",
		Password: "open-sesame",
	})
	require.NoError(t, err)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "pema@example.com",
		Password: "open-sesame",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Identity)
	assert.Equal(t, "pema@example.com", output.Identity.Email)
	assert.Equal(t, "Pema Lepcha", output.Identity.Name)
	assert.NotEqual(t, uuid.Nil, output.Identity.FarmerID)
}

func TestAccountService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "pema@example.com", Password: "right"})
	require.NoError(t, err)

	_, err = fx.service.SignIn(ctx, &usecase.SignInInput{Email: "pema@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	// Same error as a wrong password so callers cannot probe for
	// registered emails.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_SignIn_MissingDigest(t *testing.T) {
	fx := createTestAccountService(t)

	fx.repo.byEmail["legacy@example.com"] = &entity.Farmer{
		ID:    uuid.New(),
		Email: "legacy@example.com",
	}

	_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "legacy@example.com",
		Password: "anything",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_SignIn_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repo.findErr = errors.New("connection refused")

	_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "pema@example.com",
		Password: "pw",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSignInFailed))
}
