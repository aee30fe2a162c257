package rx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxkit/rx"
)

func TestFilterMapPipeline(t *testing.T) {
	even := rx.Filter(rx.Of(1, 2, 3, 4, 5), func(v int) bool { return v%2 == 0 })
	doubled := rx.Map(even, func(v int) int { return v * 2 })

	rec := record[int]()
	doubled.Subscribe(rec.observer())

	assert.Equal(t, []int{4, 8}, rec.Values())
	assert.True(t, rec.Completed())
	assert.NoError(t, rec.Err())
}

func TestMapFailureTerminatesStream(t *testing.T) {
	rec := record[int]()
	rx.Map(rx.Of(1, 2, 3), func(v int) int {
		if v == 2 {
			panic(errors.New("bad transform"))
		}
		return v
	}).Subscribe(rec.observer())

	assert.Equal(t, []int{1}, rec.Values())
	require.EqualError(t, rec.Err(), "bad transform")
	assert.False(t, rec.Completed())
}

func TestFilterForwardsTerminals(t *testing.T) {
	source := rx.Create(func(sub rx.Subscriber[int]) {
		sub.Next(1)
		sub.Error(errors.New("upstream failed"))
	})
	rec := record[int]()
	rx.Filter(source, func(int) bool { return true }).Subscribe(rec.observer())
	assert.EqualError(t, rec.Err(), "upstream failed")
}

func TestTap(t *testing.T) {
	var seen []int
	rec := record[int]()
	rx.Tap(rx.Of(1, 2), func(v int) { seen = append(seen, v) }).Subscribe(rec.observer())
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []int{1, 2}, rec.Values())
}

func TestTakeBoundsAndCancelsUpstream(t *testing.T) {
	subj := rx.NewSubject[int]()
	rec := record[int]()
	rx.Take[int](subj, 2).Subscribe(rec.observer())

	subj.Next(1)
	subj.Next(2)
	subj.Next(3)

	assert.Equal(t, []int{1, 2}, rec.Values())
	assert.True(t, rec.Completed())
}

func TestCatchErrorSubstitutesFallback(t *testing.T) {
	source := rx.Create(func(sub rx.Subscriber[string]) {
		sub.Next("Before Error")
		sub.Error(errors.New("Something went wrong!"))
	})
	caught := rx.CatchError(source, func(error) rx.Observable[string] {
		return rx.Of("Fallback value")
	})

	rec := record[string]()
	caught.Subscribe(rec.observer())

	assert.Equal(t, []string{"Before Error", "Fallback value"}, rec.Values())
	assert.True(t, rec.Completed())
	assert.NoError(t, rec.Err(), "the error must never reach downstream")
}

func TestCatchErrorHandlerFailure(t *testing.T) {
	rec := record[int]()
	rx.CatchError(rx.Throw[int](errors.New("first")), func(error) rx.Observable[int] {
		panic(errors.New("handler failed"))
	}).Subscribe(rec.observer())
	assert.EqualError(t, rec.Err(), "handler failed")
}

func TestRetryResubscribes(t *testing.T) {
	t.Run("recovers within budget", func(t *testing.T) {
		runs := 0
		flaky := rx.Create(func(sub rx.Subscriber[int]) {
			runs++
			if runs < 3 {
				sub.Error(errors.New("transient"))
				return
			}
			sub.Next(42)
			sub.Complete()
		})

		rec := record[int]()
		rx.Retry(flaky, 2).Subscribe(rec.observer())

		assert.Equal(t, 3, runs)
		assert.Equal(t, []int{42}, rec.Values())
		assert.True(t, rec.Completed())
	})

	t.Run("exhausts budget", func(t *testing.T) {
		runs := 0
		broken := rx.Create(func(sub rx.Subscriber[int]) {
			runs++
			sub.Error(errors.New("permanent"))
		})

		rec := record[int]()
		rx.Retry(broken, 2).Subscribe(rec.observer())

		assert.Equal(t, 3, runs)
		assert.EqualError(t, rec.Err(), "permanent")
	})
}

func TestMaterialize(t *testing.T) {
	rec := record[rx.Notification[int]]()
	rx.Materialize(rx.Of(7)).Subscribe(rec.observer())

	values := rec.Values()
	require.Len(t, values, 2)
	assert.Equal(t, rx.KindNext, values[0].Kind())
	assert.Equal(t, 7, values[0].Value())
	assert.Equal(t, rx.KindComplete, values[1].Kind())
	assert.True(t, rec.Completed())

	rec = record[rx.Notification[int]]()
	rx.Materialize(rx.Throw[int](errors.New("oops"))).Subscribe(rec.observer())
	values = rec.Values()
	require.Len(t, values, 1)
	assert.Equal(t, rx.KindError, values[0].Kind())
	assert.EqualError(t, values[0].Err(), "oops")
	assert.True(t, rec.Completed())
}
