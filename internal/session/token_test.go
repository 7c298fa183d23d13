package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/GrowthMindset/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewManager_ShortSecret(t *testing.T) {
	if _, err := NewManager("short"); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestIssueParse_RoundTrip(t *testing.T) {
	m, err := NewManager(testSecret)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := m.Issue(models.Session{AccountID: 42, Username: "alice", IssuedAt: issued})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	sess, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sess.AccountID != 42 || sess.Username != "alice" {
		t.Errorf("session = %+v; want account 42 alice", sess)
	}
	if !sess.IssuedAt.Equal(issued) {
		t.Errorf("IssuedAt = %v; want %v", sess.IssuedAt, issued)
	}
}

func TestIssue_RejectsEmptySession(t *testing.T) {
	m, _ := NewManager(testSecret)
	if _, err := m.Issue(models.Session{}); err == nil {
		t.Fatal("expected error for session without account")
	}
}

func TestIssue_UniqueTokens(t *testing.T) {
	m, _ := NewManager(testSecret)
	sess := models.Session{AccountID: 1, IssuedAt: time.Now()}
	a, _ := m.Issue(sess)
	b, _ := m.Issue(sess)
	if a == b {
		t.Error("two issued tokens are identical")
	}
}

func TestParse_Invalid(t *testing.T) {
	m, _ := NewManager(testSecret)
	other, _ := NewManager(strings.Repeat("x", 32))
	foreign, _ := other.Issue(models.Session{AccountID: 1, IssuedAt: time.Now()})

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", foreign},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Parse(tc.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("Parse error = %v; want ErrInvalidToken", err)
			}
		})
	}
}
