package rx

import "sync"

// MergeMap derives an inner observable per source value and runs all inner
// subscriptions concurrently, interleaving their emissions in arrival order.
// The merged stream completes once the source and every inner have completed.
func MergeMap[T, R any](source Observable[T], project func(T) Observable[R]) Observable[R] {
	return mergeMapLimit(source, project, 0)
}

// ConcatMap queues inner observables and runs them strictly sequentially,
// starting the next only after the current completes.
func ConcatMap[T, R any](source Observable[T], project func(T) Observable[R]) Observable[R] {
	return mergeMapLimit(source, project, 1)
}

// mergeMapLimit is the shared flattening machinery; limit caps the live
// inner subscriptions (0 means unbounded), overflow waits in a pending queue.
func mergeMapLimit[T, R any](source Observable[T], project func(T) Observable[R], limit int) Observable[R] {
	return Create(func(down Subscriber[R]) {
		inners := NewCompositeSubscription()
		down.Add(inners.Unsubscribe)

		var mu sync.Mutex
		active := 0
		outerDone := false
		var pending []Observable[R]

		var start func(inner Observable[R])
		start = func(inner Observable[R]) {
			slot := inners.Reserve()
			if slot < 0 {
				return
			}
			obs := NewObserver(down.Next, down.Error, func() {
				inners.Release(slot)
				mu.Lock()
				active--
				var next Observable[R]
				if len(pending) > 0 {
					next = pending[0]
					pending = pending[1:]
					active++
				}
				done := next == nil && outerDone && active == 0
				mu.Unlock()
				if next != nil {
					start(next)
					return
				}
				if done {
					down.Complete()
				}
			})
			inners.Attach(slot, inner.Subscribe(obs))
		}

		up := NewObserver(func(v T) {
			inner, err := try(func() Observable[R] { return project(v) })
			if err != nil {
				down.Error(err)
				return
			}
			mu.Lock()
			if limit > 0 && active >= limit {
				pending = append(pending, inner)
				mu.Unlock()
				return
			}
			active++
			mu.Unlock()
			start(inner)
		}, down.Error, func() {
			mu.Lock()
			outerDone = true
			done := active == 0 && len(pending) == 0
			mu.Unlock()
			if done {
				down.Complete()
			}
		})
		sub := source.Subscribe(up)
		down.Add(sub.Unsubscribe)
	})
}

// SwitchMap derives an inner observable per source value and mirrors only
// the most recent one; the previous inner subscription is cancelled before
// the new one starts.
func SwitchMap[T, R any](source Observable[T], project func(T) Observable[R]) Observable[R] {
	return Create(func(down Subscriber[R]) {
		inners := NewCompositeSubscription()
		down.Add(inners.Unsubscribe)

		var mu sync.Mutex
		currentSlot := -1
		innerActive := false
		outerDone := false

		up := NewObserver(func(v T) {
			inner, err := try(func() Observable[R] { return project(v) })
			if err != nil {
				down.Error(err)
				return
			}
			mu.Lock()
			prev := currentSlot
			slot := inners.Reserve()
			if slot < 0 {
				mu.Unlock()
				return
			}
			currentSlot = slot
			innerActive = true
			mu.Unlock()
			if prev >= 0 {
				inners.Release(prev)
			}
			obs := NewObserver(down.Next, down.Error, func() {
				inners.Release(slot)
				mu.Lock()
				if currentSlot == slot {
					currentSlot = -1
					innerActive = false
				}
				done := outerDone && !innerActive
				mu.Unlock()
				if done {
					down.Complete()
				}
			})
			inners.Attach(slot, inner.Subscribe(obs))
		}, down.Error, func() {
			mu.Lock()
			outerDone = true
			done := !innerActive
			mu.Unlock()
			if done {
				down.Complete()
			}
		})
		sub := source.Subscribe(up)
		down.Add(sub.Unsubscribe)
	})
}
