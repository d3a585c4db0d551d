package tokens

import (
	"context"
	"math"
	"time"

	"github.com/redis/rueidis"
)

// RedisStore хранит отозванные jti ключами с EX = оставшееся время жизни токена
type RedisStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisStore(client rueidis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
	}
}

// NewRedisClient создает клиент rueidis
func NewRedisClient(addr, password string) (rueidis.Client, error) {
	return rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{addr},
		Password:     password,
		DisableCache: true,
	})
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	seconds := int64(math.Ceil(ttl.Seconds()))

	cmd := s.client.B().Set().Key(s.prefix + tokenID).Value("1").ExSeconds(seconds).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	cmd := s.client.B().Exists().Key(s.prefix + tokenID).Build()
	n, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
