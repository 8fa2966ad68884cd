package domain

import "errors"

var (
	ErrUserExists         = errors.New("username already taken")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet policy")

	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")

	ErrNoHistory = errors.New("no history for product")
	ErrForbidden = errors.New("access forbidden")

	ErrInvalidOrder = errors.New("invalid order")
	ErrInvalidQuery = errors.New("invalid search query")
)
