package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CacheKeyPrefix is part of the external contract: other processes may read
// cached users directly under this prefix.
const CacheKeyPrefix = "user:"

// maxIDLength is counted in characters, matching the request validator.
const maxIDLength = 128

// UserRecord is a rider-platform user. ID is immutable once created.
type UserRecord struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
	Role string `json:"role" bson:"role"`
}

// CacheKey returns the cache key under which the user with id is stored.
func CacheKey(id string) string {
	return CacheKeyPrefix + id
}

// Validate reports the first field that makes u unusable for creation.
func (u *UserRecord) Validate() error {
	switch {
	case strings.TrimSpace(u.ID) == "":
		return &ValidationError{Field: "id", Reason: "is required"}
	case utf8.RuneCountInString(u.ID) > maxIDLength:
		return &ValidationError{Field: "id", Reason: "is too long"}
	case strings.IndexFunc(u.ID, unicode.IsSpace) >= 0:
		return &ValidationError{Field: "id", Reason: "must not contain whitespace"}
	case strings.TrimSpace(u.Name) == "":
		return &ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(u.Role) == "":
		return &ValidationError{Field: "role", Reason: "is required"}
	}
	return nil
}
