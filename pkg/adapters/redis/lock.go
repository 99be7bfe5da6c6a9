package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
)

var (
	// ErrLeaseHeld is returned when another operator holds the lock.
	ErrLeaseHeld = errors.New("registry is locked by another operator")
	// ErrLeaseLost is returned when renewing a lock that expired or changed owner.
	ErrLeaseLost = errors.New("registry lease lost")
)

// UnlockFunc releases a lock obtained from Locker.
type UnlockFunc func(ctx context.Context) error

// Locker hands out Redis locks using SET NX PX.
type Locker struct {
	client *backend.Client
	prefix string
}

// NewLocker creates a new Redis locker.
func NewLocker(client *backend.Client, prefix string) *Locker {
	return &Locker{
		client: client,
		prefix: prefix,
	}
}

const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

const renewScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end
`

// Lease is a held lock that can be extended.
type Lease struct {
	client *backend.Client
	key    string
	token  string
	ttl    time.Duration
}

// Renew resets the lease TTL. Returns ErrLeaseLost if the lock expired
// or was taken by someone else.
func (l *Lease) Renew(ctx context.Context) error {
	n, err := l.client.Eval(ctx, renewScript, []string{l.key}, l.token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("redis error renewing lock: %w", err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Release deletes the lock if it is still ours.
func (l *Lease) Release(ctx context.Context) error {
	return l.client.Eval(ctx, unlockScript, []string{l.key}, l.token).Err()
}

// TryLease acquires the lock for key without waiting.
// Returns ErrLeaseHeld if someone else owns it.
func (l *Locker) TryLease(ctx context.Context, key string, ttl time.Duration) (*Lease, error) {
	lockKey := l.prefix + "lock:" + key
	// Random token so we only ever touch our own lock.
	val := uuid.NewString()

	ok, err := l.client.SetNX(ctx, lockKey, val, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error acquiring lock: %w", err)
	}
	if !ok {
		return nil, ErrLeaseHeld
	}
	return &Lease{client: l.client, key: lockKey, token: val, ttl: ttl}, nil
}

// TryLock is TryLease for callers that never renew.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error) {
	lease, err := l.TryLease(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	return lease.Release, nil
}
