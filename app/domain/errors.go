package domain

import "errors"

// Domain errors. Repository and usecase layers return these sentinels so
// transports can map them to HTTP statuses without string matching. The
// read path deliberately collapses most of them into one uniform denial.
var (
	// Trip errors
	ErrTripNotFound  = errors.New("trip not found")
	ErrDuplicateSlug = errors.New("trip slug already exists")
	ErrPhotoNotFound = errors.New("photo not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
)
