package observable

import (
	"sync"

	"github.com/wwqgtxx/observable/common/channel"
)

// Subscriber buffers emitted items in an unbounded FIFO so a consumer can
// drain them from a plain channel at its own pace without ever blocking
// the producer. Emit and Close share one lock: an emission in flight when
// the subscription is cancelled is dropped instead of hitting the closed
// buffer.
type Subscriber[T any] struct {
	buffer *channel.InfiniteChannel[T]
	mu     sync.Mutex
	closed bool
}

func newSubscriber[T any]() *Subscriber[T] {
	return &Subscriber[T]{buffer: channel.NewInfiniteChannel[T]()}
}

func (s *Subscriber[T]) Emit(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.buffer.In() <- item
}

func (s *Subscriber[T]) Out() <-chan T {
	return s.buffer.Out()
}

func (s *Subscriber[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.buffer.Close()
}

// SubscribeChan bridges one subscription onto a channel. Every value is
// buffered and the channel is closed after either terminal notification
// drains through; a stream error closes the channel the same way completion
// does, so callers that need the error itself should use Subscribe.
// Unsubscribing via the returned handle also closes the channel.
func (o *Observable[T]) SubscribeChan() (<-chan T, *Subscription) {
	sub := newSubscriber[T]()
	handle := o.Subscribe(Handlers[T]{
		OnNext:     sub.Emit,
		OnError:    func(error) { sub.Close() },
		OnComplete: sub.Close,
	})
	return sub.Out(), &Subscription{unsubscribe: func() {
		handle.Unsubscribe()
		sub.Close()
	}}
}
