package observable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeChanDrainsAll(t *testing.T) {
	values, _ := Just(1, 2, 3).SubscribeChan()

	got := make([]int, 0, 3)
	for v := range values {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSubscribeChanClosesOnError(t *testing.T) {
	obs := NewObservable(func(observer *Observer[int]) func() {
		observer.Next(1)
		observer.Error(assert.AnError)
		return nil
	})

	values, _ := obs.SubscribeChan()
	got := make([]int, 0, 1)
	for v := range values {
		got = append(got, v)
	}
	assert.Equal(t, []int{1}, got)
}

func TestSubscribeChanUnsubscribe(t *testing.T) {
	var retained *Observer[int]
	obs := NewObservable(func(observer *Observer[int]) func() {
		retained = observer
		return nil
	})

	values, sub := obs.SubscribeChan()
	retained.Next(1)
	sub.Unsubscribe()
	retained.Next(2)

	got := make([]int, 0, 1)
	for v := range values {
		got = append(got, v)
	}
	assert.Equal(t, []int{1}, got)

	sub.Unsubscribe() // still safe
}

func TestSubscribeChanEmitRacesUnsubscribe(t *testing.T) {
	for i := 0; i < 1000; i++ {
		var retained *Observer[int]
		obs := NewObservable(func(observer *Observer[int]) func() {
			retained = observer
			return nil
		})

		values, sub := obs.SubscribeChan()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			retained.Next(1)
		}()
		go func() {
			defer wg.Done()
			sub.Unsubscribe()
		}()
		wg.Wait()

		got := 0
		for range values {
			got++
		}
		assert.LessOrEqual(t, got, 1)
	}
}

func TestSubscriberEmitAfterCloseDropped(t *testing.T) {
	sub := newSubscriber[int]()
	sub.Emit(1)
	sub.Close()

	assert.NotPanics(t, func() { sub.Emit(2) })

	got := make([]int, 0, 1)
	for v := range sub.Out() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1}, got)
}

func TestSubscriberCloseIdempotent(t *testing.T) {
	sub := newSubscriber[int]()
	sub.Emit(1)

	assert.NotPanics(t, func() {
		sub.Close()
		sub.Close()
	})

	v, open := <-sub.Out()
	assert.True(t, open)
	assert.Equal(t, 1, v)

	_, open = <-sub.Out()
	assert.False(t, open)
}
