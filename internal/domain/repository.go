package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SearchClient defines the interface for the third-party product search provider
type SearchClient interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
	Configured() bool
}

// UserRepository defines the interface for user account persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// TokenIssuer creates and verifies session tokens for user IDs
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
