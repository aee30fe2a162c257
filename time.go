package rx

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Interval emits an increasing counter every period, from its own timer
// goroutine, and never completes on its own; bound it with Take or cancel
// the subscription. A nil clock means wall time; tests pass clock.NewMock().
func Interval(c clock.Clock, period time.Duration) Observable[int] {
	return Create(func(sub Subscriber[int]) {
		if c == nil {
			c = clock.New()
		}
		ticker := c.Ticker(period)
		stop := make(chan struct{})
		var once sync.Once
		sub.Add(func() {
			once.Do(func() {
				ticker.Stop()
				close(stop)
			})
		})
		go func() {
			for i := 0; ; i++ {
				select {
				case <-ticker.C:
					sub.Next(i)
				case <-stop:
					return
				}
			}
		}()
	})
}

// Timer emits a single zero after delay, then completes.
func Timer(c clock.Clock, delay time.Duration) Observable[int] {
	return Create(func(sub Subscriber[int]) {
		if c == nil {
			c = clock.New()
		}
		timer := c.Timer(delay)
		stop := make(chan struct{})
		var once sync.Once
		sub.Add(func() {
			once.Do(func() {
				timer.Stop()
				close(stop)
			})
		})
		go func() {
			select {
			case <-timer.C:
				sub.Next(0)
				sub.Complete()
			case <-stop:
			}
		}()
	})
}
