package rx

import "sync"

// FromChan drains a channel into the subscriber from its own goroutine and
// completes when the channel closes. Unsubscribing stops the drain; the
// channel itself stays open, it belongs to the caller.
func FromChan[T any](source <-chan T) Observable[T] {
	return Create(func(sub Subscriber[T]) {
		stop := make(chan struct{})
		var once sync.Once
		sub.Add(func() {
			once.Do(func() { close(stop) })
		})
		go func() {
			for {
				select {
				case v, ok := <-source:
					if !ok {
						sub.Complete()
						return
					}
					sub.Next(v)
				case <-stop:
					return
				}
			}
		}()
	})
}
