package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"directchat/internal/models"

	"github.com/redis/go-redis/v9"
)

// UserCache keeps recently resolved user records in redis so that the
// identity verifier and the conversation join step do not hit postgres on
// every call. A cold or unreachable redis degrades to a miss.
type UserCache struct {
	redis *redis.Client
	ctx   context.Context
	ttl   time.Duration
}

func NewUserCache(redis *redis.Client, ctx context.Context, ttl time.Duration) *UserCache {
	return &UserCache{
		redis: redis,
		ctx:   ctx,
		ttl:   ttl,
	}
}

func (uc *UserCache) Get(id uint) (*models.User, bool) {
	if uc.redis == nil {
		return nil, false
	}
	payload, err := uc.redis.Get(uc.ctx, userKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		log.Println("Error unmarshalling cached user:", err)
		return nil, false
	}
	return &user, true
}

func (uc *UserCache) Set(user *models.User) {
	if uc.redis == nil || user == nil {
		return
	}
	payload, err := json.Marshal(user)
	if err != nil {
		log.Println("Error marshalling user for cache:", err)
		return
	}
	if err := uc.redis.Set(uc.ctx, userKey(user.ID), payload, uc.ttl).Err(); err != nil {
		log.Println("Error caching user:", err)
	}
}

func userKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}
