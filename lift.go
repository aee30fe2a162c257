package rx

import "sync"

// Lift applies an operator to a source such that subscriptions to the
// resulting observable flow through the operator. Cancelling the derived
// subscription cancels the upstream one.
func Lift[T, R any](source Observable[T], op Operator[T, R]) Observable[R] {
	return Create(func(down Subscriber[R]) {
		sub := source.Subscribe(op(down))
		down.Add(sub.Unsubscribe)
	})
}

// Map forwards transform(v) for every upstream value. A failing transform
// errors the stream.
func Map[T, R any](source Observable[T], transform func(T) R) Observable[R] {
	return Lift(source, func(down Subscriber[R]) Observer[T] {
		return NewObserver(func(v T) {
			out, err := try(func() R { return transform(v) })
			if err != nil {
				down.Error(err)
				return
			}
			down.Next(out)
		}, down.Error, down.Complete)
	})
}

// Filter forwards only values for which keep returns true. Terminal
// notifications pass through untouched.
func Filter[T any](source Observable[T], keep func(T) bool) Observable[T] {
	return Lift(source, func(down Subscriber[T]) Observer[T] {
		return NewObserver(func(v T) {
			ok, err := try(func() bool { return keep(v) })
			if err != nil {
				down.Error(err)
				return
			}
			if ok {
				down.Next(v)
			}
		}, down.Error, down.Complete)
	})
}

// Tap runs inspect for every value before forwarding it. This is the seam
// for caller-owned side effects such as logging.
func Tap[T any](source Observable[T], inspect func(T)) Observable[T] {
	return Lift(source, func(down Subscriber[T]) Observer[T] {
		return NewObserver(func(v T) {
			inspect(v)
			down.Next(v)
		}, down.Error, down.Complete)
	})
}

// Take forwards the first count values, then completes and cancels upstream.
func Take[T any](source Observable[T], count int) Observable[T] {
	return Create(func(down Subscriber[T]) {
		if count <= 0 {
			down.Complete()
			return
		}
		var mu sync.Mutex
		taken := 0
		up := NewObserver(func(v T) {
			mu.Lock()
			if taken >= count {
				mu.Unlock()
				return
			}
			taken++
			last := taken == count
			mu.Unlock()
			down.Next(v)
			if last {
				down.Complete()
			}
		}, down.Error, down.Complete)
		sub := source.Subscribe(up)
		down.Add(sub.Unsubscribe)
	})
}

// CatchError intercepts an upstream error and substitutes the observable
// built by handler as the tail of the stream; downstream never sees the
// original error unless the handler itself fails.
func CatchError[T any](source Observable[T], handler func(error) Observable[T]) Observable[T] {
	return Create(func(down Subscriber[T]) {
		up := NewObserver(down.Next, func(err error) {
			fallback, herr := try(func() Observable[T] { return handler(err) })
			if herr != nil {
				down.Error(herr)
				return
			}
			if fallback == nil {
				down.Error(err)
				return
			}
			fsub := fallback.Subscribe(NewObserver(down.Next, down.Error, down.Complete))
			down.Add(fsub.Unsubscribe)
		}, down.Complete)
		sub := source.Subscribe(up)
		down.Add(sub.Unsubscribe)
	})
}

// Retry resubscribes to the source on error, up to attempts extra times.
// Recovery is never automatic elsewhere in the core; this operator is the
// explicit opt-in.
func Retry[T any](source Observable[T], attempts int) Observable[T] {
	return Create(func(down Subscriber[T]) {
		var attempt func(remaining int)
		attempt = func(remaining int) {
			up := NewObserver(down.Next, func(err error) {
				if remaining <= 0 || !down.IsSubscribed() {
					down.Error(err)
					return
				}
				attempt(remaining - 1)
			}, down.Complete)
			sub := source.Subscribe(up)
			down.Add(sub.Unsubscribe)
		}
		attempt(attempts)
	})
}

// Materialize reifies every notification as a value, ending with the
// terminal notification followed by completion.
func Materialize[T any](source Observable[T]) Observable[Notification[T]] {
	return Lift(source, func(down Subscriber[Notification[T]]) Observer[T] {
		return NewObserver(func(v T) {
			down.Next(NextNotification(v))
		}, func(err error) {
			down.Next(ErrorNotification[T](err))
			down.Complete()
		}, func() {
			down.Next(CompleteNotification[T]())
			down.Complete()
		})
	})
}
