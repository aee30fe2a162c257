package rx

import "sync"

// subscriber guards a downstream observer: it enforces at most one terminal
// notification, drops Next after a terminal or an unsubscribe, and owns the
// teardown hooks. It is both the Subscriber handed to producers and the
// Subscription handed back to callers.
type subscriber[T any] struct {
	mu    sync.Mutex
	dest  Observer[T]
	done  bool
	hooks hooks
}

func newSubscriber[T any](dest Observer[T]) *subscriber[T] {
	if dest == nil {
		dest = NewObserver[T](nil, nil, nil)
	}
	return &subscriber[T]{dest: dest}
}

func (s *subscriber[T]) Next(v T) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.dest.Next(v)
}

func (s *subscriber[T]) Error(err error) {
	if !s.finish() {
		return
	}
	s.dest.Error(err)
	s.hooks.invoke()
}

func (s *subscriber[T]) Complete() {
	if !s.finish() {
		return
	}
	s.dest.Complete()
	s.hooks.invoke()
}

// Unsubscribe ends delivery without a terminal notification. Calling it
// after completion or error only has teardown left to do, which has already
// run, so it is a no-op.
func (s *subscriber[T]) Unsubscribe() {
	if !s.finish() {
		return
	}
	s.hooks.invoke()
}

func (s *subscriber[T]) IsSubscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.done
}

func (s *subscriber[T]) Add(fn Teardown) {
	s.hooks.add(fn)
}

// finish claims the terminal transition; only the first caller wins.
func (s *subscriber[T]) finish() bool {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return false
	}
	s.done = true
	s.mu.Unlock()
	return true
}
