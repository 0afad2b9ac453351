package redis

import (
	"context"
)

// IProducer 定義了 Producer 的操作介面
type IProducer[T any] interface {
	Start()
	Publish(data T) error
	Close()
}

// IConsumer 定義了 Consumer 的操作介面
type IConsumer[T any] interface {
	Start()
	Subscribe() <-chan T
	Close()
}

// ILocker 定義了分散式鎖的操作介面
type ILocker interface {
	Lock(ctx context.Context, key string) (context.Context, func(), error)
}
