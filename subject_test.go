package rx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxkit/rx"
)

func TestSubjectForwardsOnlyFutureEmissions(t *testing.T) {
	subj := rx.NewSubject[string]()

	early := record[string]()
	subj.Subscribe(early.observer())
	subj.Next("Hello")

	late := record[string]()
	subj.Subscribe(late.observer())
	subj.Next("World")
	subj.Complete()

	assert.Equal(t, []string{"Hello", "World"}, early.Values())
	assert.Equal(t, []string{"World"}, late.Values(), "a late subscriber must miss past emissions")
	assert.True(t, early.Completed())
	assert.True(t, late.Completed())
}

func TestSubjectTerminalStateIsSticky(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		subj := rx.NewSubject[int]()
		rec := record[int]()
		subj.Subscribe(rec.observer())

		subj.Complete()
		subj.Next(1)
		subj.Error(errors.New("too late"))

		assert.Empty(t, rec.Values())
		assert.True(t, rec.Completed())
		assert.NoError(t, rec.Err())

		late := record[int]()
		subj.Subscribe(late.observer())
		assert.True(t, late.Completed(), "late subscriber gets an immediate terminal")
	})

	t.Run("error", func(t *testing.T) {
		subj := rx.NewSubject[int]()
		subj.Error(errors.New("down"))
		subj.Next(1)

		late := record[int]()
		subj.Subscribe(late.observer())
		assert.EqualError(t, late.Err(), "down")
		assert.Empty(t, late.Values())
	})
}

func TestSubjectUnsubscribeDuringDelivery(t *testing.T) {
	subj := rx.NewSubject[int]()

	second := record[int]()
	var secondSub rx.Subscription

	first := record[int]()
	firstObserver := rx.NewObserver(func(v int) {
		first.mu.Lock()
		first.values = append(first.values, v)
		first.mu.Unlock()
		secondSub.Unsubscribe()
	}, nil, nil)

	subj.Subscribe(firstObserver)
	secondSub = subj.Subscribe(second.observer())

	subj.Next(7)
	subj.Next(8)

	assert.Equal(t, []int{7, 8}, first.Values())
	assert.Empty(t, second.Values(), "delivery stops once the subscription is gone")
}

func TestBehaviorSubject(t *testing.T) {
	subj := rx.NewBehaviorSubject("Initial Value")

	first := record[string]()
	subj.Subscribe(first.observer())
	require.Equal(t, []string{"Initial Value"}, first.Values(), "seed delivered synchronously on subscribe")

	subj.Next("Updated Value")

	second := record[string]()
	subj.Subscribe(second.observer())

	assert.Equal(t, []string{"Initial Value", "Updated Value"}, first.Values())
	assert.Equal(t, []string{"Updated Value"}, second.Values(), "only the latest value, never the seed")
	assert.Equal(t, "Updated Value", subj.Value())

	subj.Complete()
	late := record[string]()
	subj.Subscribe(late.observer())
	assert.Empty(t, late.Values())
	assert.True(t, late.Completed())
	assert.Equal(t, "Updated Value", subj.Value(), "held value stays readable after terminal")
}

func TestReplaySubject(t *testing.T) {
	t.Run("bounded buffer", func(t *testing.T) {
		subj := rx.NewReplaySubject[int](2)
		subj.Next(1)
		subj.Next(2)
		subj.Next(3)

		rec := record[int]()
		subj.Subscribe(rec.observer())
		assert.Equal(t, []int{2, 3}, rec.Values())

		subj.Next(4)
		assert.Equal(t, []int{2, 3, 4}, rec.Values())
	})

	t.Run("unbounded buffer", func(t *testing.T) {
		subj := rx.NewReplaySubject[int](0)
		for i := 1; i <= 5; i++ {
			subj.Next(i)
		}
		rec := record[int]()
		subj.Subscribe(rec.observer())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, rec.Values())
	})

	t.Run("replay then terminal", func(t *testing.T) {
		subj := rx.NewReplaySubject[string](0)
		subj.Next("kept")
		subj.Complete()

		rec := record[string]()
		subj.Subscribe(rec.observer())
		assert.Equal(t, []string{"kept"}, rec.Values())
		assert.True(t, rec.Completed())
	})
}

func TestAsyncSubject(t *testing.T) {
	t.Run("releases last value on completion", func(t *testing.T) {
		subj := rx.NewAsyncSubject[int]()
		rec := record[int]()
		subj.Subscribe(rec.observer())

		subj.Next(1)
		subj.Next(2)
		subj.Next(3)
		require.Empty(t, rec.Values(), "nothing is released before completion")

		subj.Complete()
		assert.Equal(t, []int{3}, rec.Values())
		assert.True(t, rec.Completed())

		late := record[int]()
		subj.Subscribe(late.observer())
		assert.Equal(t, []int{3}, late.Values(), "late subscribers still get the released value")
		assert.True(t, late.Completed())
	})

	t.Run("error discards the value", func(t *testing.T) {
		subj := rx.NewAsyncSubject[int]()
		rec := record[int]()
		subj.Subscribe(rec.observer())

		subj.Next(1)
		subj.Error(errors.New("lost"))

		assert.Empty(t, rec.Values())
		assert.EqualError(t, rec.Err(), "lost")

		late := record[int]()
		subj.Subscribe(late.observer())
		assert.EqualError(t, late.Err(), "lost")
	})

	t.Run("completion without value", func(t *testing.T) {
		subj := rx.NewAsyncSubject[string]()
		rec := record[string]()
		subj.Subscribe(rec.observer())
		subj.Complete()
		assert.Empty(t, rec.Values())
		assert.True(t, rec.Completed())
	})
}
