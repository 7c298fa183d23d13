// Package service provides account and progress business logic,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/GrowthMindset/internal/models"
)

// dummyHash is compared against when no account matches, so a failed login
// costs about the same whether or not the username exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountRepository defines the persistence operations
// required by the account service.
type AccountRepository interface {
	// CreateAccount stores a new account and returns its id.
	CreateAccount(ctx context.Context, username string, passwordHash []byte) (int64, error)
	// AccountsByUsername returns all accounts with the given username, lowest id first.
	AccountsByUsername(ctx context.Context, username string) ([]models.Account, error)
}

// AccountService implements sign-up and credential checks.
type AccountService struct {
	repo AccountRepository
	cost int
	now  func() time.Time
}

// NewAccountService constructs an AccountService hashing passwords with the
// given bcrypt cost. A cost outside bcrypt's range falls back to the default.
func NewAccountService(repo AccountRepository, cost int) *AccountService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AccountService{repo: repo, cost: cost, now: time.Now}
}

// CreateAccount registers a new account. No uniqueness or strength checks are
// made; registering the same username twice creates two accounts.
func (s *AccountService) CreateAccount(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.repo.CreateAccount(ctx, username, hash); err != nil {
		return err
	}
	return nil
}

// VerifyCredentials returns a session for the lowest-id account whose
// username and password both match. Any mismatch yields ErrInvalidCredentials.
func (s *AccountService) VerifyCredentials(ctx context.Context, username, password string) (*models.Session, error) {
	accounts, err := s.repo.AccountsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	for _, a := range accounts {
		if bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) == nil {
			return &models.Session{
				AccountID: a.ID,
				Username:  a.Username,
				IssuedAt:  s.now().UTC(),
			}, nil
		}
	}
	return nil, ErrInvalidCredentials
}
