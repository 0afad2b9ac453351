//go:generate mockgen -package=auction -destination=mock.go -source=interfaces.go

package auction

import "context"

// Locker 提供以 key 為單位的互斥鎖
// Lock 回傳的 context 會在鎖失效或釋放時被取消，unlock 可以重複呼叫
type Locker interface {
	Lock(ctx context.Context, key string) (context.Context, func(), error)
}

// Publisher 負責發布拍賣事件，呼叫時交易已提交且仍持有該拍賣的鎖
// Publish 不應阻塞
type Publisher interface {
	Publish(event Event) error
}
