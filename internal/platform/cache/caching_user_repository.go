// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	authusecase "user_service/internal/feature/auth/usecase"
	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// DefaultNamespace prefixes every key written by CachingUserRepository.
const DefaultNamespace = "users"

// purgeBatch is the SCAN COUNT hint used by Purge.
const purgeBatch = 100

// UserStore is the repository surface shared by the users and auth features.
type UserStore interface {
	usecase.UserRepository
	authusecase.UserRepository
}

// cachedUser is the cached projection of a user. The password hash is never cached.
type cachedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CachingUserRepository decorates a UserStore with Redis caching of
// List and FindByID. Writes go to the inner store first and then
// invalidate the affected keys. FindByEmail and SearchByName are not cached.
type CachingUserRepository struct {
	inner     UserStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ UserStore = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserStore with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses DefaultNamespace.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner UserStore, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the user and invalidates the cached list.
func (c *CachingUserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := c.inner.Create(ctx, user); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey())
	return nil
}

// FindByID returns the user from cache, falling back to the inner store.
// Users served from cache carry an empty Password.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	var hit cachedUser
	if c.load(ctx, key, &hit) {
		u := hit.toEntity()
		return &u, nil
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fromEntity(*u))
	return u, nil
}

// FindByEmail is passed through; login needs the password hash.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// List returns all users from cache, falling back to the inner store.
func (c *CachingUserRepository) List(ctx context.Context) ([]entity.User, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	var hit []cachedUser
	if c.load(ctx, key, &hit) {
		out := make([]entity.User, 0, len(hit))
		for _, cu := range hit {
			out = append(out, cu.toEntity())
		}
		return out, nil
	}

	users, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	projected := make([]cachedUser, 0, len(users))
	for _, u := range users {
		projected = append(projected, fromEntity(u))
	}
	c.store(ctx, key, projected)
	return users, nil
}

// SearchByName is passed through.
func (c *CachingUserRepository) SearchByName(ctx context.Context, name string) ([]entity.User, error) {
	return c.inner.SearchByName(ctx, name)
}

// Update writes through and invalidates the user's entry and the list.
func (c *CachingUserRepository) Update(ctx context.Context, id uint, name, email string) error {
	if err := c.inner.Update(ctx, id, name, email); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.idKey(id))
	return nil
}

// Delete removes the user and invalidates the user's entry and the list.
func (c *CachingUserRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.idKey(id))
	return nil
}

// load reads key into dst. Corrupted entries are deleted and reported as a miss.
func (c *CachingUserRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store writes v under key. Best effort: cache failures never fail the request.
func (c *CachingUserRepository) store(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

// invalidate deletes keys. Best effort.
func (c *CachingUserRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

func (c *CachingUserRepository) listKey() string {
	return c.namespace + ":all"
}

func (c *CachingUserRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

func fromEntity(u entity.User) cachedUser {
	return cachedUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (cu cachedUser) toEntity() entity.User {
	return entity.User{ID: cu.ID, Name: cu.Name, Email: cu.Email}
}

// Purge deletes every key under namespace and returns how many were removed.
// Run it after the users table is reset so cached rows cannot outlive their IDs.
func Purge(ctx context.Context, rdb *redis.Client, namespace string) (int, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := rdb.Scan(ctx, cursor, namespace+":*", purgeBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to scan %s keys: %w", namespace, err)
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to delete %s keys: %w", namespace, err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
