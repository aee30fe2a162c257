package rx

import "sync"

// CompositeSubscription is an arena of child subscriptions addressed by
// insertion slot. Unsubscribing the arena cascades to every live child;
// children added afterwards are cancelled immediately.
type CompositeSubscription struct {
	mu       sync.Mutex
	closed   bool
	nextSlot int
	children map[int]Subscription
}

func NewCompositeSubscription() *CompositeSubscription {
	return &CompositeSubscription{children: make(map[int]Subscription)}
}

// Reserve allocates a slot ahead of subscribing, so a child that terminates
// synchronously during Subscribe can already release it. Returns -1 if the
// arena is closed.
func (c *CompositeSubscription) Reserve() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return -1
	}
	slot := c.nextSlot
	c.nextSlot++
	c.children[slot] = nil
	return slot
}

// Attach binds a subscription to a reserved slot. If the slot was released
// in the meantime, or the arena is closed, the subscription is cancelled.
func (c *CompositeSubscription) Attach(slot int, sub Subscription) {
	if sub == nil {
		return
	}
	if slot < 0 {
		sub.Unsubscribe()
		return
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	if _, ok := c.children[slot]; !ok {
		c.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	c.children[slot] = sub
	c.mu.Unlock()
}

// Add reserves a slot and attaches in one step.
func (c *CompositeSubscription) Add(sub Subscription) int {
	slot := c.Reserve()
	if slot < 0 {
		if sub != nil {
			sub.Unsubscribe()
		}
		return -1
	}
	c.Attach(slot, sub)
	return slot
}

// Release drops a slot and cancels whatever was attached to it.
func (c *CompositeSubscription) Release(slot int) {
	c.mu.Lock()
	sub, ok := c.children[slot]
	if ok {
		delete(c.children, slot)
	}
	c.mu.Unlock()
	if sub != nil {
		sub.Unsubscribe()
	}
}

func (c *CompositeSubscription) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.children)
}

func (c *CompositeSubscription) IsSubscribed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

func (c *CompositeSubscription) Unsubscribe() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	subs := make([]Subscription, 0, len(c.children))
	for _, sub := range c.children {
		if sub != nil {
			subs = append(subs, sub)
		}
	}
	c.children = nil
	c.mu.Unlock()
	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
