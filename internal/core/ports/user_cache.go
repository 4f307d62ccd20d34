package ports

import (
	"context"
	"time"

	"github.com/ridenow/user-service/internal/core/domain"
)

// UserCache is a volatile, expiring snapshot store for users. It is never
// authoritative.
type UserCache interface {
	// Get returns found=false with a nil error on a miss or an expired entry.
	// Connection failures match domain.ErrBackendUnavailable.
	Get(ctx context.Context, key string) (*domain.UserRecord, bool, error)
	// Set stores user under key. A ttl <= 0 selects the adapter default.
	Set(ctx context.Context, key string, user *domain.UserRecord, ttl time.Duration) error
}
