// internal/services/cart_store.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/printcraft/store-backend/internal/models"
)

// CartStore persists the per-session cart blob. Implementations own the
// expiry policy; callers never see another session's cart.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisCartStore keeps carts in Redis as JSON under a session-scoped key
// with a sliding TTL.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return &models.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// A corrupt blob is unrecoverable; start the visitor fresh.
		return &models.Cart{SessionID: sessionID}, nil
	}
	cart.SessionID = sessionID
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(cart.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// MemoryCartStore is the in-process fallback used in tests and local
// development without Redis. Carts never expire.
type MemoryCartStore struct {
	mtx   sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if cart, ok := s.carts[sessionID]; ok {
		copied := cart
		copied.Items = append([]models.CartLine(nil), cart.Items...)
		return &copied, nil
	}
	return &models.Cart{SessionID: sessionID}, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, cart *models.Cart) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart.UpdatedAt = time.Now()
	stored := *cart
	stored.Items = append([]models.CartLine(nil), cart.Items...)
	s.carts[cart.SessionID] = stored
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.carts, sessionID)
	return nil
}
