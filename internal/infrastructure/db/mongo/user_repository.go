package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ridenow/user-service/internal/core/domain"
)

// DefaultCollection holds one document per user, keyed by _id.
const DefaultCollection = "users"

const backendName = "mongo"

type MongoUserRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserRepository stores users in coll. The user id is the document _id,
// so uniqueness is enforced by MongoDB itself.
func NewUserRepository(coll *mongo.Collection, timeout time.Duration) *MongoUserRepository {
	return &MongoUserRepository{coll: coll, timeout: timeoutOrDefault(timeout)}
}

type mongoUser struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	Role      string `bson:"role"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.UserRecord, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, domain.NewBackendError(backendName, "find user", err)
	}

	return &domain.UserRecord{ID: mu.ID, Name: mu.Name, Role: mu.Role}, true, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *domain.UserRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := mongoUser{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: time.Now().UTC().Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return domain.NewBackendError(backendName, "insert user", err)
	}
	return nil
}
