package service

import (
	"context"
	"fmt"
	"time"

	"github.com/atinyakov/GrowthMindset/internal/models"
)

// AccountChecker reports whether an account id is known to the store.
type AccountChecker interface {
	AccountExists(ctx context.Context, id int64) (bool, error)
}

// ProgressRepository defines the persistence operations needed by the ProgressService.
type ProgressRepository interface {
	// AddProgress appends entry and returns its id.
	AddProgress(ctx context.Context, entry models.ProgressEntry) (int64, error)
}

// ProgressService records daily progress for authenticated users.
type ProgressService struct {
	accounts AccountChecker
	repo     ProgressRepository
	now      func() time.Time
}

// NewProgressService constructs a ProgressService. now supplies "today";
// nil means time.Now.
func NewProgressService(accounts AccountChecker, repo ProgressRepository, now func() time.Time) *ProgressService {
	if now == nil {
		now = time.Now
	}
	return &ProgressService{accounts: accounts, repo: repo, now: now}
}

// RecordProgress appends a progress entry dated today for the session's
// account. The percentage is stored as given; range checks belong to the
// input layer. Calling it twice stores two entries.
func (s *ProgressService) RecordProgress(ctx context.Context, sess *models.Session, percentage int) (*models.ProgressEntry, error) {
	if sess == nil || !sess.Valid() {
		return nil, ErrMissingSession
	}
	exists, err := s.accounts.AccountExists(ctx, sess.AccountID)
	if err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}
	if !exists {
		return nil, ErrMissingSession
	}

	entry := models.ProgressEntry{
		AccountID: sess.AccountID,
		Progress:  percentage,
		Date:      s.now().Format(models.DateLayout),
	}
	id, err := s.repo.AddProgress(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}
