package session

import (
	"context"
	"strconv"
	"time"

	redisclient "github.com/greenbasket/storefront/cmd/redis"
)

// Repository holds auth sessions and the session-scoped shopper state
// (wishlist set, cart hash) in Redis. Mutations are last-writer-wins.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error

	AddWishlist(ctx context.Context, userID, productID uint64) error
	RemoveWishlist(ctx context.Context, userID, productID uint64) error
	InWishlist(ctx context.Context, userID, productID uint64) (bool, error)
	ListWishlist(ctx context.Context, userID uint64) ([]uint64, error)

	SetCartItem(ctx context.Context, userID, productID uint64, quantity int) error
	RemoveCartItem(ctx context.Context, userID, productID uint64) error
	GetCart(ctx context.Context, userID uint64) (map[uint64]int, error)
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func wishlistKey(userID uint64) string {
	return "wishlist:" + strconv.FormatUint(userID, 10)
}

func cartKey(userID uint64) string {
	return "cart:" + strconv.FormatUint(userID, 10)
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

func (r *redis) AddWishlist(ctx context.Context, userID, productID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.SAdd(ctx, wishlistKey(userID), productID).Err()
}

func (r *redis) RemoveWishlist(ctx context.Context, userID, productID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.SRem(ctx, wishlistKey(userID), productID).Err()
}

func (r *redis) InWishlist(ctx context.Context, userID, productID uint64) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}
	return client.SIsMember(ctx, wishlistKey(userID), productID).Result()
}

func (r *redis) ListWishlist(ctx context.Context, userID uint64) ([]uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return []uint64{}, nil
	}
	members, err := client.SMembers(ctx, wishlistKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *redis) SetCartItem(ctx context.Context, userID, productID uint64, quantity int) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.HSet(ctx, cartKey(userID), strconv.FormatUint(productID, 10), quantity).Err()
}

func (r *redis) RemoveCartItem(ctx context.Context, userID, productID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.HDel(ctx, cartKey(userID), strconv.FormatUint(productID, 10)).Err()
}

func (r *redis) GetCart(ctx context.Context, userID uint64) (map[uint64]int, error) {
	client := redisclient.Get()
	if client == nil {
		return map[uint64]int{}, nil
	}
	raw, err := client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	items := make(map[uint64]int, len(raw))
	for field, value := range raw {
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		items[id] = qty
	}
	return items, nil
}
