package repository

import (
	"context"
	"errors"

	"github.com/rizkypratama/user-crud-api/internal/domain/entity"
)

// ErrNotFound reports that no document matched the given id. Callers decide
// whether absence is an error; the HTTP layer renders it as a null user.
var ErrNotFound = errors.New("user not found")

// UserFields carries a partial update. Nil pointers leave the stored value
// untouched; the store merges only the fields that are set.
type UserFields struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create inserts a new user and writes the store-assigned id back onto u.
	Create(ctx context.Context, u *entity.User) error
	// FindAll returns every stored user; order is unspecified.
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByID returns the matching user or ErrNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// UpdateByID merges the set fields into the document and returns the
	// post-update user, or ErrNotFound.
	UpdateByID(ctx context.Context, id string, fields UserFields) (*entity.User, error)
	// DeleteByID removes the document and returns it as it existed before
	// deletion, or ErrNotFound.
	DeleteByID(ctx context.Context, id string) (*entity.User, error)
}
