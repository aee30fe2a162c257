package rx

// Of emits the given values in order, then completes.
func Of[T any](values ...T) Observable[T] {
	return Create(func(sub Subscriber[T]) {
		for _, v := range values {
			if !sub.IsSubscribed() {
				return
			}
			sub.Next(v)
		}
		sub.Complete()
	})
}

// Slice emits the elements of values in order, then completes.
func Slice[T any](values []T) Observable[T] {
	return Of(values...)
}

// Range emits count integers starting at start, then completes.
func Range(start, count int) Observable[int] {
	return Create(func(sub Subscriber[int]) {
		for i := 0; i < count; i++ {
			if !sub.IsSubscribed() {
				return
			}
			sub.Next(start + i)
		}
		sub.Complete()
	})
}

// Empty completes immediately without emitting.
func Empty[T any]() Observable[T] {
	return Create(func(sub Subscriber[T]) {
		sub.Complete()
	})
}

// Throw errors immediately with err.
func Throw[T any](err error) Observable[T] {
	return Create(func(sub Subscriber[T]) {
		sub.Error(err)
	})
}

// Never emits nothing and never terminates.
func Never[T any]() Observable[T] {
	return Create(func(Subscriber[T]) {})
}

// Defer invokes factory once per subscription and subscribes to its result,
// so each subscriber gets a freshly built source.
func Defer[T any](factory func() Observable[T]) Observable[T] {
	return Create(func(sub Subscriber[T]) {
		source, err := try(func() Observable[T] { return factory() })
		if err != nil {
			sub.Error(err)
			return
		}
		inner := source.Subscribe(NewObserver(sub.Next, sub.Error, sub.Complete))
		sub.Add(inner.Unsubscribe)
	})
}
