package rx

type NotificationKind string

const (
	KindNext     NotificationKind = "next"
	KindError    NotificationKind = "error"
	KindComplete NotificationKind = "complete"
)

// Notification is a stream event reified as a value, as produced by
// Materialize. Value is meaningful only for KindNext, Err only for KindError.
type Notification[T any] struct {
	kind  NotificationKind
	value T
	err   error
}

func NextNotification[T any](v T) Notification[T] {
	return Notification[T]{kind: KindNext, value: v}
}

func ErrorNotification[T any](err error) Notification[T] {
	return Notification[T]{kind: KindError, err: err}
}

func CompleteNotification[T any]() Notification[T] {
	return Notification[T]{kind: KindComplete}
}

func (n Notification[T]) Kind() NotificationKind {
	return n.kind
}

func (n Notification[T]) Value() T {
	return n.value
}

func (n Notification[T]) Err() error {
	return n.err
}
