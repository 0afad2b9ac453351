package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

type lockerOptions struct {
	prefix        string
	expiry        time.Duration
	retryDelay    time.Duration
	renewInterval time.Duration
	skipLockError bool
	logger        *slog.Logger
}

type LockerOption func(*lockerOptions)

// WithLockerPrefix 設置鎖的 key 前綴
func WithLockerPrefix(prefix string) LockerOption {
	return func(o *lockerOptions) {
		o.prefix = prefix
	}
}

// WithLockerExpiry 設置鎖過期時間
func WithLockerExpiry(d time.Duration) LockerOption {
	return func(o *lockerOptions) {
		o.expiry = d
	}
}

// WithLockerRetryDelay 設置重試延遲
func WithLockerRetryDelay(d time.Duration) LockerOption {
	return func(o *lockerOptions) {
		o.retryDelay = d
	}
}

// WithLockerRenewInterval 設置自動續期間隔，未設置時為過期時間的 1/3
func WithLockerRenewInterval(d time.Duration) LockerOption {
	return func(o *lockerOptions) {
		o.renewInterval = d
	}
}

// WithLockerSkipLockError 設置遇到 Redis 錯誤時是否繼續重試
func WithLockerSkipLockError(skip bool) LockerOption {
	return func(o *lockerOptions) {
		o.skipLockError = skip
	}
}

func WithLockerLogger(logger *slog.Logger) LockerOption {
	return func(o *lockerOptions) {
		o.logger = logger
	}
}

// Locker 以 redsync 實作的分散式鎖，持有期間會自動續期
// 續期失敗時 Lock 回傳的 context 會被取消，讓進行中的資料庫交易中止
type Locker struct {
	rs      *redsync.Redsync
	options lockerOptions
	logger  *slog.Logger
}

func NewLocker(client *redis.Client, opts ...LockerOption) (*Locker, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	options := lockerOptions{
		expiry:     8 * time.Second,
		retryDelay: 100 * time.Millisecond,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.expiry <= 0 {
		return nil, fmt.Errorf("invalid lock expiry: %s", options.expiry)
	}
	if options.renewInterval <= 0 {
		options.renewInterval = options.expiry / 3
	}

	return &Locker{
		rs:      redsync.New(goredis.NewPool(client)),
		options: options,
		logger:  options.logger.With(slog.String("caller", "Locker")),
	}, nil
}

// Lock 取得 key 對應的鎖，等待期間會依 retryDelay 重試直到 ctx 結束
func (l *Locker) Lock(ctx context.Context, key string) (context.Context, func(), error) {
	name := l.options.prefix + key
	m := &renewingMutex{
		Mutex: l.rs.NewMutex(
			name,
			redsync.WithExpiry(l.options.expiry),
			redsync.WithTries(1),
			redsync.WithRetryDelay(l.options.retryDelay),
		),
		options: l.options,
	}

	lockCtx, err := m.lock(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire lock %s: %w", name, err)
	}

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			ok, err := m.unlock()
			if err != nil || !ok {
				l.logger.Warn(
					"release lock failed",
					slog.String("key", name),
					slog.Bool("released", ok),
					slog.Any("error", err),
				)
			}
		})
	}
	return lockCtx, unlock, nil
}

type renewingMutex struct {
	*redsync.Mutex
	options  lockerOptions
	cancel   context.CancelFunc
	renewing bool
	mu       sync.Mutex
	wg       sync.WaitGroup
}

func (m *renewingMutex) lock(ctx context.Context) (context.Context, error) {
	timer := time.NewTimer(m.options.retryDelay)
	defer timer.Stop()

	for {
		// context 已取消時不再送出 SETNX
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		err := m.Mutex.LockContext(ctx)
		if err == nil {
			lockCtx, cancel := context.WithCancel(ctx)
			m.startRenew(lockCtx, cancel)
			return lockCtx, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// 鎖被佔用時重試，Redis 本身出錯時除非設置 skipLockError 否則直接回傳
		var redisErr *redsync.RedisError
		if !m.options.skipLockError && errors.As(err, &redisErr) {
			return nil, err
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(m.options.retryDelay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (m *renewingMutex) unlock() (bool, error) {
	m.stopRenew()
	m.wg.Wait()
	return m.Mutex.Unlock()
}

func (m *renewingMutex) startRenew(ctx context.Context, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancel = cancel
	m.renewing = true
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.options.renewInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ok, err := m.Mutex.ExtendContext(ctx)
				if err != nil || !ok {
					m.stopRenew()
					return
				}
			}
		}
	}()
}

func (m *renewingMutex) stopRenew() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.renewing {
		return
	}
	m.renewing = false
	m.cancel()
}
