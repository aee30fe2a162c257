package rx

import "fmt"

// simpleObservable is simply a function which takes a subscriber and
// provides it with data.
type simpleObservable[T any] struct {
	onSub func(Subscriber[T])
}

// Create builds an observable from a producer function. The producer runs
// synchronously once per Subscribe call; a panic inside it is routed to the
// subscriber's Error instead of propagating to the caller.
func Create[T any](onSub func(Subscriber[T])) Observable[T] {
	return &simpleObservable[T]{onSub: onSub}
}

func (obs *simpleObservable[T]) Subscribe(out Observer[T]) Subscription {
	sub := newSubscriber(out)
	runProducer(obs.onSub, sub)
	return sub
}

func runProducer[T any](producer func(Subscriber[T]), sub *subscriber[T]) {
	defer func() {
		if r := recover(); r != nil {
			sub.Error(asError(r))
		}
	}()
	producer(sub)
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// try runs f, converting a panic into an error result. Operator callbacks go
// through here so a failing transform terminates the stream via Error.
func try[R any](f func() R) (out R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = asError(r)
		}
	}()
	out = f()
	return
}
