package auction

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// LocalLocker 是單一行程內的 keyed mutex，適用於只有一個實例的部署
// 多實例部署時應改用 Redis 分散式鎖
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*lockSlot
}

type lockSlot struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		slots: make(map[string]*lockSlot),
	}
}

// Lock 取得 key 對應的鎖，等待期間 ctx 被取消時會放棄等待
func (l *LocalLocker) Lock(ctx context.Context, key string) (context.Context, func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = &lockSlot{ch: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		l.release(key, slot, false)
		return nil, nil, ctx.Err()
	case slot.ch <- struct{}{}:
	}

	lockCtx, cancel := context.WithCancel(ctx)
	var once sync.Once
	return lockCtx, func() {
		once.Do(func() {
			cancel()
			l.release(key, slot, true)
		})
	}, nil
}

func (l *LocalLocker) release(key string, slot *lockSlot, held bool) {
	if held {
		<-slot.ch
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, key)
	}
}

func auctionLockKey(auctionID uuid.UUID) string {
	return fmt.Sprintf("auction:%s:lock", auctionID)
}

// withAuctionLock 在持有拍賣鎖的情況下執行 fn，fn 收到的是帶鎖狀態的 context
func withAuctionLock(ctx context.Context, locker Locker, auctionID uuid.UUID, fn func(lockCtx context.Context) error) error {
	lockCtx, unlock, err := locker.Lock(ctx, auctionLockKey(auctionID))
	if err != nil {
		return fmt.Errorf("fail to acquire auction lock, auction=%s, err=%w", auctionID, errors.Join(ErrConcurrentConflict, err))
	}
	defer unlock()
	return fn(lockCtx)
}
