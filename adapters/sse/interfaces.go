//go:generate mockgen -package=sse -destination=mock.go -source=interfaces.go

package sse

// IChannel 定義了單一主題的訂閱與廣播
type IChannel[T any] interface {
	// Subscribe 建立一個新的訂閱並返回接收訊息的通道
	Subscribe() <-chan T
	// Unsubscribe 取消指定通道的訂閱並關閉它
	Unsubscribe(ch <-chan T)
	// UnsubscribeAll 取消所有訂閱
	UnsubscribeAll()
	// Broadcast 將訊息送給所有訂閱者，回傳因緩衝已滿而被丟棄的數量
	Broadcast(message T) int
	// IsIdle 檢查是否沒有訂閱者
	IsIdle() bool
}

// IFeed 依主題分送來源訊息給訂閱者
type IFeed[T any] interface {
	// Start 開始從來源讀取訊息，應在呼叫其他方法前先呼叫
	Start()
	// Done 停止讀取並關閉所有訂閱
	Done()
	// Subscribe 訂閱指定主題
	Subscribe(topic string) (<-chan T, error)
	// Unsubscribe 取消訂閱，主題沒有訂閱者時會被移除
	Unsubscribe(topic string, ch <-chan T)
}
