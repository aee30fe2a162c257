package rx

import (
	"sync"

	"github.com/rs/xid"
)

type subjectState uint8

const (
	stateActive subjectState = iota
	stateErrored
	stateCompleted
)

type subjectEntry[T any] struct {
	id  xid.ID
	sub *subscriber[T]
}

// subjectBase is the multicast registry shared by every subject variant:
// observers in subscription order, keyed by id for removal, with a sticky
// terminal state. Delivery iterates a snapshot taken under the lock, so an
// observer may subscribe or unsubscribe mid-notification without corrupting
// the iteration.
type subjectBase[T any] struct {
	mu      sync.Mutex
	entries []subjectEntry[T]
	state   subjectState
	fail    error
}

// register appends the subscriber; caller holds mu and has checked state.
func (b *subjectBase[T]) register(sub *subscriber[T]) xid.ID {
	id := xid.New()
	b.entries = append(b.entries, subjectEntry[T]{id: id, sub: sub})
	return id
}

func (b *subjectBase[T]) remove(id xid.ID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// snapshotLocked copies the current targets; caller holds mu.
func (b *subjectBase[T]) snapshotLocked() []*subscriber[T] {
	targets := make([]*subscriber[T], len(b.entries))
	for i, e := range b.entries {
		targets[i] = e.sub
	}
	return targets
}

func (b *subjectBase[T]) next(v T) {
	b.mu.Lock()
	if b.state != stateActive {
		b.mu.Unlock()
		return
	}
	targets := b.snapshotLocked()
	b.mu.Unlock()
	for _, t := range targets {
		t.Next(v)
	}
}

// terminate claims the terminal transition and hands back the targets to
// notify; a nil return means the subject was already terminal.
func (b *subjectBase[T]) terminate(state subjectState, err error) []*subscriber[T] {
	b.mu.Lock()
	if b.state != stateActive {
		b.mu.Unlock()
		return nil
	}
	b.state = state
	b.fail = err
	targets := b.snapshotLocked()
	b.entries = nil
	b.mu.Unlock()
	return targets
}

func (b *subjectBase[T]) error(err error) {
	for _, t := range b.terminate(stateErrored, err) {
		t.Error(err)
	}
}

func (b *subjectBase[T]) complete() {
	for _, t := range b.terminate(stateCompleted, nil) {
		t.Complete()
	}
}

// Subject is both an observer and a hot observable: values pushed with Next
// are multicast to every current subscriber in subscription order. New
// subscribers only see emissions from their subscription onwards; after a
// terminal notification they receive that notification immediately.
type Subject[T any] struct {
	base subjectBase[T]
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

func (s *Subject[T]) Next(v T) { s.base.next(v) }

func (s *Subject[T]) Error(err error) { s.base.error(err) }

func (s *Subject[T]) Complete() { s.base.complete() }

func (s *Subject[T]) Subscribe(out Observer[T]) Subscription {
	sub := newSubscriber(out)
	s.base.mu.Lock()
	switch s.base.state {
	case stateErrored:
		err := s.base.fail
		s.base.mu.Unlock()
		sub.Error(err)
		return sub
	case stateCompleted:
		s.base.mu.Unlock()
		sub.Complete()
		return sub
	}
	id := s.base.register(sub)
	s.base.mu.Unlock()
	sub.Add(func() { s.base.remove(id) })
	return sub
}
