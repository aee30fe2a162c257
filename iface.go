// Package rx is a minimal reactive stream core: cold observables, operator
// composition, multicast subjects and stream combinators. Delivery is
// synchronous on the caller's execution context; producers that emit from
// their own goroutines must serialize their notifications.
package rx

// Observable is a lazy producer of values. Each Subscribe call is an
// independent execution of the producer (cold semantics) unless the
// observable multicasts through a subject.
type Observable[T any] interface {
	Subscribe(Observer[T]) Subscription
}

// Observer receives notifications from an observable. A subscription sees at
// most one terminal notification (Error or Complete) and no Next after it.
type Observer[T any] interface {
	Next(T)
	Error(error)
	Complete()
}

// Subscriber is what a producer function is handed: the downstream observer
// plus the subscription side it needs to cooperate with cancellation.
type Subscriber[T any] interface {
	Observer[T]
	Add(Teardown)
	IsSubscribed() bool
}

// Subscription represents one active observation. Unsubscribe is idempotent
// and runs the registered teardown hooks exactly once.
type Subscription interface {
	Unsubscribe()
	IsSubscribed() bool
	Add(Teardown)
}

// Teardown is a cleanup hook run when a subscription ends for any reason.
type Teardown func()

// Operator builds the upstream observer for one downstream subscriber.
// Lifting a source through an operator yields a derived observable.
type Operator[T, R any] func(downstream Subscriber[R]) Observer[T]
