package service

import "errors"

var (
	// ErrInvalidCredentials is returned when no account matches the supplied
	// username and password. It does not say which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrMissingSession is returned when an operation needs an authenticated
	// session and none (or one for an unknown account) was supplied.
	ErrMissingSession = errors.New("authenticated session required")
)
