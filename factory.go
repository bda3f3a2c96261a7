package observable

import "github.com/wwqgtxx/observable/log"

// FromSlice returns an Observable whose producer emits every element of
// items in order and then completes, all synchronously inside Subscribe.
func FromSlice[T any](items []T) *Observable[T] {
	return NewObservable(func(observer *Observer[T]) func() {
		for _, item := range items {
			observer.Next(item)
		}
		observer.Complete()
		return func() {
			log.Debugln("[Observable] slice source of %d item(s) torn down", len(items))
		}
	})
}

// Just is FromSlice for an inline argument list.
func Just[T any](items ...T) *Observable[T] {
	return FromSlice(items)
}
