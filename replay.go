package rx

// ReplaySubject buffers past emissions (all of them when capacity is zero or
// negative, else the most recent capacity values) and replays the buffer in
// emission order to every new subscriber before live delivery resumes. Late
// subscribers of a terminated replay subject still get the buffer, then the
// terminal notification.
type ReplaySubject[T any] struct {
	base     subjectBase[T]
	capacity int
	buffer   []T
}

func NewReplaySubject[T any](capacity int) *ReplaySubject[T] {
	return &ReplaySubject[T]{capacity: capacity}
}

func (s *ReplaySubject[T]) Next(v T) {
	s.base.mu.Lock()
	if s.base.state != stateActive {
		s.base.mu.Unlock()
		return
	}
	s.buffer = append(s.buffer, v)
	if s.capacity > 0 && len(s.buffer) > s.capacity {
		s.buffer = s.buffer[len(s.buffer)-s.capacity:]
	}
	targets := s.base.snapshotLocked()
	s.base.mu.Unlock()
	for _, t := range targets {
		t.Next(v)
	}
}

func (s *ReplaySubject[T]) Error(err error) { s.base.error(err) }

func (s *ReplaySubject[T]) Complete() { s.base.complete() }

func (s *ReplaySubject[T]) Subscribe(out Observer[T]) Subscription {
	sub := newSubscriber(out)
	s.base.mu.Lock()
	replay := make([]T, len(s.buffer))
	copy(replay, s.buffer)
	state := s.base.state
	fail := s.base.fail
	var remove Teardown
	if state == stateActive {
		id := s.base.register(sub)
		remove = func() { s.base.remove(id) }
	}
	s.base.mu.Unlock()
	if remove != nil {
		sub.Add(remove)
	}
	for _, v := range replay {
		sub.Next(v)
	}
	switch state {
	case stateErrored:
		sub.Error(fail)
	case stateCompleted:
		sub.Complete()
	}
	return sub
}
