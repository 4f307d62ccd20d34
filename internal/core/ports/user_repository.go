package ports

import (
	"context"

	"github.com/ridenow/user-service/internal/core/domain"
)

// UserRepository is the durable, authoritative user store.
type UserRepository interface {
	// FindByID reports found=false, with a nil error, when no user has this id.
	FindByID(ctx context.Context, id string) (*domain.UserRecord, bool, error)
	// Insert fails with domain.ErrConflict when the id is already taken.
	Insert(ctx context.Context, user *domain.UserRecord) error
}
