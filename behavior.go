package rx

// BehaviorSubject holds the latest value (seeded at construction) and hands
// it to every new subscriber synchronously before live emissions. Value
// exposes a synchronous read of the held value.
type BehaviorSubject[T any] struct {
	base  subjectBase[T]
	value T
}

func NewBehaviorSubject[T any](seed T) *BehaviorSubject[T] {
	return &BehaviorSubject[T]{value: seed}
}

func (s *BehaviorSubject[T]) Value() T {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()
	return s.value
}

func (s *BehaviorSubject[T]) Next(v T) {
	s.base.mu.Lock()
	if s.base.state != stateActive {
		s.base.mu.Unlock()
		return
	}
	s.value = v
	targets := s.base.snapshotLocked()
	s.base.mu.Unlock()
	for _, t := range targets {
		t.Next(v)
	}
}

func (s *BehaviorSubject[T]) Error(err error) { s.base.error(err) }

func (s *BehaviorSubject[T]) Complete() { s.base.complete() }

// Subscribe registers the observer and delivers the current value to it
// before any later emission. After a terminal notification only that
// notification is delivered; the held value stays readable via Value.
func (s *BehaviorSubject[T]) Subscribe(out Observer[T]) Subscription {
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
	current := s.value
	id := s.base.register(sub)
	s.base.mu.Unlock()
	sub.Add(func() { s.base.remove(id) })
	sub.Next(current)
	return sub
}
