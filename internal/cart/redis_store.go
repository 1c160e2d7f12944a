package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const cartTTL = 7 * 24 * time.Hour

// RedisStore keeps carts in Redis so a shopper's cart survives a service
// restart or a page reload against another replica. Carts are serialized
// as JSON; the key expires after a week of inactivity.
type RedisStore struct {
	client *redis.Client
}

func CreateRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	payload, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return &Cart{}, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RedisStore.Get").Msg("")
		return nil, err
	}

	cart := Cart{}
	if err := json.Unmarshal(payload, &cart); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RedisStore.Get").Msg("")
		return nil, err
	}

	return &cart, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(sessionID), payload, cartTTL).Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RedisStore.Save").Msg("")
		return err
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RedisStore.Delete").Msg("")
		return err
	}

	return nil
}
