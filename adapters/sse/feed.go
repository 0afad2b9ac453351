package sse

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrFeedClosed = errors.New("feed is closed")

type feedOptions struct {
	logger     *slog.Logger
	bufferSize int
}

type FeedOption func(*feedOptions)

func WithFeedLogger(logger *slog.Logger) FeedOption {
	return func(o *feedOptions) {
		o.logger = logger
	}
}

// WithFeedBufferSize 設置每個訂閱者的緩衝大小
func WithFeedBufferSize(size int) FeedOption {
	return func(o *feedOptions) {
		o.bufferSize = size
	}
}

// Feed 從單一來源讀取訊息，依 topicOf 的結果廣播到對應主題的訂閱者
// 來源通常是 Redis Stream 的消費者，讓多個服務實例都能收到同一份訊息
type Feed[T any] struct {
	source  <-chan T
	topicOf func(T) string
	options feedOptions
	logger  *slog.Logger

	mu       sync.RWMutex
	wg       sync.WaitGroup
	cancel   context.CancelFunc
	active   bool
	channels map[string]*Channel[T]
}

func NewFeed[T any](source <-chan T, topicOf func(T) string, opts ...FeedOption) (*Feed[T], error) {
	if source == nil {
		return nil, errors.New("source cannot be nil")
	}
	if topicOf == nil {
		return nil, errors.New("topic function cannot be nil")
	}

	options := feedOptions{
		logger:     slog.Default(),
		bufferSize: 16,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Feed[T]{
		source:   source,
		topicOf:  topicOf,
		options:  options,
		logger:   options.logger.With(slog.String("caller", "Feed")),
		channels: make(map[string]*Channel[T]),
	}, nil
}

func (f *Feed[T]) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.active || f.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.active = true

	f.wg.Add(1)
	go f.run(ctx)
}

func (f *Feed[T]) run(ctx context.Context) {
	defer f.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-f.source:
			if !ok {
				f.logger.Info("feed source closed")
				return
			}
			topic := f.topicOf(message)

			f.mu.RLock()
			channel, exists := f.channels[topic]
			f.mu.RUnlock()
			if !exists {
				continue
			}
			if dropped := channel.Broadcast(message); dropped > 0 {
				f.logger.Warn("slow subscribers dropped message", slog.String("topic", topic), slog.Int("dropped", dropped))
			}
		}
	}
}

// Done 停止 Feed 並關閉所有訂閱者的通道
func (f *Feed[T]) Done() {
	f.mu.Lock()
	if !f.active {
		f.mu.Unlock()
		return
	}
	f.active = false
	f.mu.Unlock()

	f.cancel()
	f.wg.Wait()

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, channel := range f.channels {
		channel.UnsubscribeAll()
	}
	clear(f.channels)
}

func (f *Feed[T]) Subscribe(topic string) (<-chan T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.active {
		return nil, ErrFeedClosed
	}

	c, ok := f.channels[topic]
	if !ok {
		c = NewChannel[T](f.options.bufferSize)
		f.channels[topic] = c
	}
	return c.Subscribe(), nil
}

func (f *Feed[T]) Unsubscribe(topic string, ch <-chan T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.channels[topic]
	if !ok {
		return
	}

	c.Unsubscribe(ch)
	if c.IsIdle() {
		delete(f.channels, topic)
	}
}

var _ IFeed[struct{}] = (*Feed[struct{}])(nil)
