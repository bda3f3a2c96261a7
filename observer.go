package observable

import "sync"

// Handlers carries the optional callbacks for one subscription.
// A nil field is simply skipped when the matching notification fires.
type Handlers[T any] struct {
	OnNext     func(T)
	OnError    func(error)
	OnComplete func()
}

// Observer is the live endpoint of a single subscription. It is created by
// Observable.Subscribe and handed to the producer. The first of Error,
// Complete or Unsubscribe terminates it; after that every notification is a
// silent no-op and the teardown has run (or runs as soon as one is attached).
type Observer[T any] struct {
	handlers Handlers[T]

	mu         sync.Mutex // guards terminated, torndown, teardown
	terminated bool
	torndown   bool
	teardown   func()
}

func newObserver[T any](handlers Handlers[T]) *Observer[T] {
	return &Observer[T]{handlers: handlers}
}

// Next delivers a value to the OnNext handler. It never changes the
// subscription state; values sent after termination are dropped.
func (o *Observer[T]) Next(value T) {
	o.mu.Lock()
	terminated := o.terminated
	o.mu.Unlock()

	if terminated {
		return
	}
	if h := o.handlers.OnNext; h != nil {
		h(value)
	}
}

// Error delivers the terminal error notification and terminates the
// subscription. Errors arriving after termination are silently dropped,
// so at most one terminal handler ever runs.
func (o *Observer[T]) Error(err error) {
	if !o.claim() {
		return
	}
	if h := o.handlers.OnError; h != nil {
		h(err)
	}
	o.runTeardown()
}

// Complete delivers the terminal completion notification and terminates
// the subscription. No-op when already terminated.
func (o *Observer[T]) Complete() {
	if !o.claim() {
		return
	}
	if h := o.handlers.OnComplete; h != nil {
		h()
	}
	o.runTeardown()
}

// Unsubscribe terminates the subscription without invoking any handler.
// Idempotent: calls after the first have no effect.
func (o *Observer[T]) Unsubscribe() {
	if !o.claim() {
		return
	}
	o.runTeardown()
}

// SetTeardown attaches the cleanup action to run on termination, silently
// replacing any earlier one. When the observer is already terminated the
// action runs immediately, unless a teardown already ran; either way it
// runs at most once in total.
func (o *Observer[T]) SetTeardown(fn func()) {
	o.mu.Lock()
	o.teardown = fn
	run := o.terminated && !o.torndown && fn != nil
	if run {
		o.torndown = true
	}
	o.mu.Unlock()

	if run {
		fn()
	}
}

// claim flips the observer to terminated and reports whether this call won.
// Handlers and teardown run outside the lock so they may re-enter the
// observer without deadlocking.
func (o *Observer[T]) claim() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.terminated {
		return false
	}
	o.terminated = true
	return true
}

func (o *Observer[T]) runTeardown() {
	o.mu.Lock()
	fn := o.teardown
	run := fn != nil && !o.torndown
	if run {
		o.torndown = true
	}
	o.mu.Unlock()

	if run {
		fn()
	}
}
