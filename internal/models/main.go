// Package models defines the core data structures for accounts, progress
// entries and authenticated sessions.
package models

import "time"

// DateLayout is the calendar-date format used for every stored date.
const DateLayout = "2006-01-02"

// Account represents an application user with credentials.
type Account struct {
	// ID is the storage-assigned sequential identifier.
	ID int64
	// Username is the login name chosen by the user. It is not unique.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// ProgressEntry is one self-reported daily completion percentage.
type ProgressEntry struct {
	ID        int64  `json:"id"`
	AccountID int64  `json:"user_id"`
	Progress  int    `json:"progress"`
	Date      string `json:"date"`
}

// Session is the authenticated context returned by a successful credential
// check. Operations acting on behalf of a user require one.
type Session struct {
	// AccountID identifies the authenticated account.
	AccountID int64
	// Username is the name the user logged in with.
	Username string
	// IssuedAt is when the credentials were verified.
	IssuedAt time.Time
}

// Valid reports whether the session refers to an account at all.
func (s Session) Valid() bool {
	return s.AccountID > 0
}

// Reflection is a dated free-text note. The table exists but nothing reads
// or writes it yet.
type Reflection struct {
	ID        int64
	AccountID int64
	Text      string
	Date      string
}

// Habit is a dated habit record, stored alongside reflections.
type Habit struct {
	ID        int64
	AccountID int64
	Habit     string
	Date      string
}
