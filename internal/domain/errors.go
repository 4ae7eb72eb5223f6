package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSkinTypeRequired is returned when the skinType query parameter is missing
	ErrSkinTypeRequired = errors.New("skinType query is required")

	// ErrSearchNotConfigured is returned when search API credentials are missing
	ErrSearchNotConfigured = errors.New("search API credentials missing")

	// ErrSearchAPIFailure is returned when the search API request fails
	ErrSearchAPIFailure = errors.New("search API request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrIncompleteQuiz is returned when not every quiz question was answered
	ErrIncompleteQuiz = errors.New("all quiz questions must be answered")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user lookup has no result
	ErrUserNotFound = errors.New("user not found")

	// ErrUnauthorized is returned when a bearer token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")
)
