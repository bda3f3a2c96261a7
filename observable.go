package observable

// Producer performs the emission logic for one subscription. It receives a
// fresh Observer and may emit synchronously before returning, or retain the
// observer and emit later from another goroutine. A non-nil return value is
// the teardown action to run once when the subscription terminates.
type Producer[T any] func(*Observer[T]) func()

// Observable is an inert, reusable description of how to produce values.
// It holds no per-subscription state: every Subscribe call gets its own
// Observer and its own producer invocation, and terminating one
// subscription never affects another.
type Observable[T any] struct {
	producer Producer[T]
}

// NewObservable wraps a producer. The producer is not invoked until
// Subscribe is called.
func NewObservable[T any](producer Producer[T]) *Observable[T] {
	return &Observable[T]{producer: producer}
}

// Subscribe starts one subscription: it builds a fresh Observer around the
// given handlers, invokes the producer exactly once with it, attaches the
// producer's teardown if one was returned, and returns the cancellation
// handle.
func (o *Observable[T]) Subscribe(handlers Handlers[T]) *Subscription {
	observer := newObserver(handlers)
	if teardown := o.producer(observer); teardown != nil {
		observer.SetTeardown(teardown)
	}
	return &Subscription{unsubscribe: observer.Unsubscribe}
}

// Subscription is the handle returned by Subscribe. It exposes nothing but
// cancellation; the Observable does not track it.
type Subscription struct {
	unsubscribe func()
}

// Unsubscribe cancels the subscription. It is idempotent and never invokes
// the OnError or OnComplete handlers.
func (s *Subscription) Unsubscribe() {
	s.unsubscribe()
}
