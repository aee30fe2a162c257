package rx

import "sync"

// Merge subscribes to all sources and forwards every emission as it arrives.
// The merged stream completes once all sources complete; the first error
// from any source terminates it immediately and cancels the rest.
func Merge[T any](sources ...Observable[T]) Observable[T] {
	return Create(func(down Subscriber[T]) {
		if len(sources) == 0 {
			down.Complete()
			return
		}
		subs := NewCompositeSubscription()
		down.Add(subs.Unsubscribe)
		var mu sync.Mutex
		remaining := len(sources)
		for _, source := range sources {
			obs := NewObserver(down.Next, down.Error, func() {
				mu.Lock()
				remaining--
				done := remaining == 0
				mu.Unlock()
				if done {
					down.Complete()
				}
			})
			subs.Add(source.Subscribe(obs))
		}
	})
}

// CombineLatest emits the latest value of every source, as a slice in source
// order, whenever any source emits once all of them have emitted at least
// once. Emission is held back while the initial subscription pass is still
// wiring sources up; fully synchronous sources therefore collapse to a
// single convergent snapshot. Completes when all sources complete, errors as
// soon as any source errors.
func CombineLatest[T any](sources ...Observable[T]) Observable[[]T] {
	return Create(func(down Subscriber[[]T]) {
		n := len(sources)
		if n == 0 {
			down.Complete()
			return
		}
		subs := NewCompositeSubscription()
		down.Add(subs.Unsubscribe)

		var mu sync.Mutex
		latest := make([]T, n)
		seen := make([]bool, n)
		seenCount := 0
		remaining := n
		wiring := true

		for i, source := range sources {
			i := i
			obs := NewObserver(func(v T) {
				mu.Lock()
				latest[i] = v
				if !seen[i] {
					seen[i] = true
					seenCount++
				}
				var tuple []T
				if !wiring && seenCount == n {
					tuple = append([]T(nil), latest...)
				}
				mu.Unlock()
				if tuple != nil {
					down.Next(tuple)
				}
			}, down.Error, func() {
				mu.Lock()
				remaining--
				done := remaining == 0 && !wiring
				mu.Unlock()
				if done {
					down.Complete()
				}
			})
			subs.Add(source.Subscribe(obs))
		}

		mu.Lock()
		wiring = false
		var tuple []T
		if seenCount == n {
			tuple = append([]T(nil), latest...)
		}
		allDone := remaining == 0
		mu.Unlock()
		if tuple != nil {
			down.Next(tuple)
		}
		if allDone {
			down.Complete()
		}
	})
}

// ForkJoin waits for every source to complete and then emits one slice of
// their final values, in source order. A source that completes without
// emitting makes ForkJoin complete without a value; any error terminates it
// immediately.
func ForkJoin[T any](sources ...Observable[T]) Observable[[]T] {
	return Create(func(down Subscriber[[]T]) {
		n := len(sources)
		if n == 0 {
			down.Complete()
			return
		}
		subs := NewCompositeSubscription()
		down.Add(subs.Unsubscribe)

		var mu sync.Mutex
		last := make([]T, n)
		has := make([]bool, n)
		remaining := n

		for i, source := range sources {
			i := i
			obs := NewObserver(func(v T) {
				mu.Lock()
				last[i] = v
				has[i] = true
				mu.Unlock()
			}, down.Error, func() {
				mu.Lock()
				remaining--
				done := remaining == 0
				var tuple []T
				if done {
					all := true
					for _, h := range has {
						all = all && h
					}
					if all {
						tuple = append([]T(nil), last...)
					}
				}
				mu.Unlock()
				if !done {
					return
				}
				if tuple != nil {
					down.Next(tuple)
				}
				down.Complete()
			})
			subs.Add(source.Subscribe(obs))
		}
	})
}
