package rx

import "sync"

// Connectable multicasts one execution of a cold source through a subject,
// turning it hot: the upstream producer runs once, on first subscription,
// and every subscriber shares its notifications from that point on.
type Connectable[T any] struct {
	mu      sync.Mutex
	source  Observable[T]
	subject *Subject[T]
	sub     Subscription
}

// Publish wraps a cold source for multicast. The upstream is not touched
// until the first Subscribe (or an explicit Connect).
func Publish[T any](source Observable[T]) *Connectable[T] {
	return &Connectable[T]{source: source, subject: NewSubject[T]()}
}

func (c *Connectable[T]) Subscribe(out Observer[T]) Subscription {
	sub := c.subject.Subscribe(out)
	c.Connect()
	return sub
}

// Connect subscribes the subject to the source if it is not already
// connected, returning the upstream subscription.
func (c *Connectable[T]) Connect() Subscription {
	c.mu.Lock()
	if c.sub == nil {
		// subscribe outside the lock: a synchronous source delivers
		// (and may recursively observe connection state) right here
		c.mu.Unlock()
		sub := c.source.Subscribe(c.subject)
		c.mu.Lock()
		if c.sub == nil {
			c.sub = sub
		} else {
			defer sub.Unsubscribe()
		}
	}
	sub := c.sub
	c.mu.Unlock()
	return sub
}

func (c *Connectable[T]) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sub != nil
}

// Unsubscribe tears down the upstream run; subscribers attached to the
// subject see no further values.
func (c *Connectable[T]) Unsubscribe() {
	c.mu.Lock()
	sub := c.sub
	c.mu.Unlock()
	if sub != nil {
		sub.Unsubscribe()
	}
}
