// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	usersadapters "user_service/internal/feature/users/adapters"
	"user_service/internal/platform/cache"
)

// NewUserRepository creates the UserStore shared by the users and auth features.
// If Redis is available, the GORM repository is wrapped with a Redis cache.
// Otherwise, the GORM repository is used directly.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) cache.UserStore {
	repo := usersadapters.NewUserRepository(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, cache.DefaultNamespace)
	}
	return repo
}
