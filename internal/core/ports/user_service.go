package ports

import (
	"context"

	"github.com/ridenow/user-service/internal/core/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, user domain.UserRecord) (*domain.UserRecord, error)
	GetUser(ctx context.Context, id string) (*domain.UserRecord, error)
}
