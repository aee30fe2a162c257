package rx

// AsyncSubject retains only the last value pushed to it and releases it on
// completion: every subscriber, current or late, then receives that value
// followed by Complete. An error discards the value.
type AsyncSubject[T any] struct {
	base subjectBase[T]
	last T
	has  bool
}

func NewAsyncSubject[T any]() *AsyncSubject[T] {
	return &AsyncSubject[T]{}
}

func (s *AsyncSubject[T]) Next(v T) {
	s.base.mu.Lock()
	if s.base.state == stateActive {
		s.last = v
		s.has = true
	}
	s.base.mu.Unlock()
}

func (s *AsyncSubject[T]) Error(err error) { s.base.error(err) }

func (s *AsyncSubject[T]) Complete() {
	s.base.mu.Lock()
	v, has := s.last, s.has
	s.base.mu.Unlock()
	for _, t := range s.base.terminate(stateCompleted, nil) {
		if has {
			t.Next(v)
		}
		t.Complete()
	}
}

func (s *AsyncSubject[T]) Subscribe(out Observer[T]) Subscription {
	sub := newSubscriber(out)
	s.base.mu.Lock()
	switch s.base.state {
	case stateErrored:
		err := s.base.fail
		s.base.mu.Unlock()
		sub.Error(err)
		return sub
	case stateCompleted:
		v, has := s.last, s.has
		s.base.mu.Unlock()
		if has {
			sub.Next(v)
		}
		sub.Complete()
		return sub
	}
	id := s.base.register(sub)
	s.base.mu.Unlock()
	sub.Add(func() { s.base.remove(id) })
	return sub
}
