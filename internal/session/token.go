// Package session carries an authenticated models.Session across HTTP
// requests as an HS256-signed token.
package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/atinyakov/GrowthMindset/internal/models"
)

// ErrInvalidToken is returned for any token that fails parsing or verification.
var ErrInvalidToken = errors.New("invalid session token")

// MinSecretLength is the shortest accepted signing secret.
const MinSecretLength = 32

type claims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens. Tokens carry no expiry.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager signing with secret.
func NewManager(secret string) (*Manager, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d characters", MinSecretLength)
	}
	return &Manager{secret: []byte(secret)}, nil
}

// Issue signs sess into a token string.
func (m *Manager) Issue(sess models.Session) (string, error) {
	if !sess.Valid() {
		return "", errors.New("issue token: session has no account")
	}
	c := claims{
		Username: sess.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(sess.AccountID, 10),
			IssuedAt: jwt.NewNumericDate(sess.IssuedAt),
			ID:       uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns the session it carries.
func (m *Manager) Parse(tokenString string) (models.Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return models.Session{}, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}

	sess := models.Session{AccountID: id, Username: c.Username}
	if c.IssuedAt != nil {
		sess.IssuedAt = c.IssuedAt.Time
	}
	return sess, nil
}
