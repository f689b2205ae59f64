package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/persistence"
	"github.com/spec-kit/account-service/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// Callers must not be able to tell which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const usersCacheKey = "users:all"

// AccountService coordinates registration, login and account CRUD.
type AccountService struct {
	users      repository.UserRepository
	cache      *persistence.Redis
	logger     *zap.Logger
	bcryptCost int
	cacheTTL   time.Duration
}

// Dependencies encapsulates the collaborators of AccountService.
type Dependencies struct {
	UserRepo repository.UserRepository
	Cache    *persistence.Redis
	Logger   *zap.Logger
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps Dependencies) *AccountService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{
		users:      deps.UserRepo,
		cache:      deps.Cache,
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
		cacheTTL:   cfg.Cache.UsersTTL(),
	}
}

// Register creates a new account. Duplicate detection relies entirely on the
// store's unique index: a concurrent registration race is settled there, and
// the losing writer gets repository.ErrDuplicateEmail.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password collapse into
// the same ErrInvalidCredentials; store faults pass through unchanged.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ListUsers returns all accounts without password hashes, serving from the
// cache when possible.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if users, ok := s.cachedListing(ctx); ok {
		return users, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeListing(ctx, users)
	return users, nil
}

// UpdateUser applies the supplied fields to the account. A missing id yields
// (nil, nil), mirroring the store contract.
func (s *AccountService) UpdateUser(ctx context.Context, id string, fields repository.UserUpdate) (*domain.User, error) {
	user, err := s.users.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return user, nil
}

// DeleteUser removes the account. Deleting an absent id still succeeds.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *AccountService) cachedListing(ctx context.Context) ([]domain.User, bool) {
	if !s.cache.Enabled() || s.cacheTTL <= 0 {
		return nil, false
	}

	payload, err := s.cache.Client.Get(ctx, usersCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var users []domain.User
	if err := json.Unmarshal(payload, &users); err != nil {
		s.logger.Warn("dropping corrupt listing cache entry", zap.Error(err))
		s.invalidateListing(ctx)
		return nil, false
	}
	return users, true
}

func (s *AccountService) storeListing(ctx context.Context, users []domain.User) {
	if !s.cache.Enabled() || s.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(users)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, usersCacheKey, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("unable to cache user listing", zap.Error(err))
	}
}

func (s *AccountService) invalidateListing(ctx context.Context) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Client.Del(ctx, usersCacheKey).Err(); err != nil {
		s.logger.Warn("unable to invalidate user listing cache", zap.Error(err))
	}
}
