package rx

import "sync"

// hooks is an ordered teardown list that fires exactly once. Hooks added
// after firing run immediately, so late wiring still gets cleaned up.
type hooks struct {
	mu    sync.Mutex
	list  []Teardown
	fired bool
}

func (h *hooks) add(fn Teardown) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	if h.fired {
		h.mu.Unlock()
		fn()
		return
	}
	h.list = append(h.list, fn)
	h.mu.Unlock()
}

func (h *hooks) invoke() {
	h.mu.Lock()
	if h.fired {
		h.mu.Unlock()
		return
	}
	h.fired = true
	fns := h.list
	h.list = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type observerFuncs[T any] struct {
	next     func(T)
	fail     func(error)
	complete func()
}

// NewObserver adapts callbacks to an Observer. Any callback may be nil; an
// error arriving with a nil error callback is routed to the unhandled-fault
// hook instead of being dropped.
func NewObserver[T any](next func(T), fail func(error), complete func()) Observer[T] {
	return &observerFuncs[T]{next: next, fail: fail, complete: complete}
}

func (o *observerFuncs[T]) Next(v T) {
	if o.next != nil {
		o.next(v)
	}
}

func (o *observerFuncs[T]) Error(err error) {
	if o.fail != nil {
		o.fail(err)
		return
	}
	unhandledError(err)
}

func (o *observerFuncs[T]) Complete() {
	if o.complete != nil {
		o.complete()
	}
}

// SubscribeWith subscribes callbacks to a source without building an
// Observer by hand.
func SubscribeWith[T any](source Observable[T], next func(T), fail func(error), complete func()) Subscription {
	return source.Subscribe(NewObserver(next, fail, complete))
}
