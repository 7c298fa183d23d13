package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atinyakov/GrowthMindset/internal/models"
)

type mockChecker struct {
	AccountExistsFunc func(ctx context.Context, id int64) (bool, error)
}

func (m *mockChecker) AccountExists(ctx context.Context, id int64) (bool, error) {
	return m.AccountExistsFunc(ctx, id)
}

type mockProgressRepo struct {
	AddProgressFunc func(ctx context.Context, entry models.ProgressEntry) (int64, error)
}

func (m *mockProgressRepo) AddProgress(ctx context.Context, entry models.ProgressEntry) (int64, error) {
	return m.AddProgressFunc(ctx, entry)
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 1, 15, 4, 5, 0, time.UTC)
}

func TestRecordProgress_Success(t *testing.T) {
	var got models.ProgressEntry
	checker := &mockChecker{
		AccountExistsFunc: func(ctx context.Context, id int64) (bool, error) {
			return id == 4, nil
		},
	}
	repo := &mockProgressRepo{
		AddProgressFunc: func(ctx context.Context, entry models.ProgressEntry) (int64, error) {
			got = entry
			return 12, nil
		},
	}
	svc := NewProgressService(checker, repo, fixedNow)

	entry, err := svc.RecordProgress(context.Background(), &models.Session{AccountID: 4}, 73)
	if err != nil {
		t.Fatalf("RecordProgress returned error: %v", err)
	}
	want := models.ProgressEntry{AccountID: 4, Progress: 73, Date: "2024-01-01"}
	if got != want {
		t.Errorf("stored entry = %+v; want %+v", got, want)
	}
	if entry.ID != 12 {
		t.Errorf("entry.ID = %d; want 12", entry.ID)
	}
}

func TestRecordProgress_MissingSession(t *testing.T) {
	repo := &mockProgressRepo{
		AddProgressFunc: func(context.Context, models.ProgressEntry) (int64, error) {
			t.Fatal("AddProgress must not be called without a session")
			return 0, nil
		},
	}
	checker := &mockChecker{
		AccountExistsFunc: func(context.Context, int64) (bool, error) {
			return false, nil
		},
	}
	svc := NewProgressService(checker, repo, fixedNow)

	cases := []struct {
		name string
		sess *models.Session
	}{
		{"nil session", nil},
		{"zero account", &models.Session{}},
		{"unknown account", &models.Session{AccountID: 99}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordProgress(context.Background(), tc.sess, 50)
			if !errors.Is(err, ErrMissingSession) {
				t.Fatalf("error = %v; want %v", err, ErrMissingSession)
			}
		})
	}
}

func TestRecordProgress_CheckerError(t *testing.T) {
	wantErr := errors.New("db down")
	checker := &mockChecker{
		AccountExistsFunc: func(context.Context, int64) (bool, error) {
			return false, wantErr
		},
	}
	svc := NewProgressService(checker, &mockProgressRepo{}, fixedNow)

	_, err := svc.RecordProgress(context.Background(), &models.Session{AccountID: 1}, 10)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v; want %v", err, wantErr)
	}
}

func TestRecordProgress_RepoError(t *testing.T) {
	wantErr := errors.New("insert failed")
	checker := &mockChecker{
		AccountExistsFunc: func(context.Context, int64) (bool, error) {
			return true, nil
		},
	}
	repo := &mockProgressRepo{
		AddProgressFunc: func(context.Context, models.ProgressEntry) (int64, error) {
			return 0, wantErr
		},
	}
	svc := NewProgressService(checker, repo, fixedNow)

	_, err := svc.RecordProgress(context.Background(), &models.Session{AccountID: 1}, 10)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v; want %v", err, wantErr)
	}
}
