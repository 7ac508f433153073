// Package watch polls the alert ledger and raises a local notification when
// the active-alert count grows. It is the server-independent core of the
// operator console.
package watch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/dto"
)

// ListFunc fetches the current active alerts, newest first.
type ListFunc func(ctx context.Context) ([]dto.AlertResponse, error)

// NotifyFunc is called (after Watcher.NotifyDelay) when new alerts appeared.
// alerts is the full response that triggered the notification.
type NotifyFunc func(alerts []dto.AlertResponse)

type Watcher struct {
	List   ListFunc
	Notify NotifyFunc
	Logger *zap.Logger

	// Interval defaults to 5s, NotifyDelay to 3s: the cadence the admin
	// dashboard has always used.
	Interval    time.Duration
	NotifyDelay time.Duration

	lastCount int
	fetching  bool
}

const (
	defaultInterval    = 5 * time.Second
	defaultNotifyDelay = 3 * time.Second
)

// Run polls until ctx is cancelled. Ticks that land while a fetch is still in
// flight are skipped, so the loop never overlaps itself. On fetch failure the
// stored count is left untouched: a transient error can neither suppress nor
// double-count the next real increase.
func (w *Watcher) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	delay := w.NotifyDelay
	if delay <= 0 {
		delay = defaultNotifyDelay
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan int, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-done:
			w.fetching = false
			if n >= 0 {
				w.lastCount = n
			}
		case <-ticker.C:
			if w.fetching {
				continue
			}
			w.fetching = true
			go w.poll(ctx, delay, done)
		}
	}
}

// poll runs off the loop goroutine; it reports the new count (or -1 on
// failure) back through done.
func (w *Watcher) poll(ctx context.Context, delay time.Duration, done chan<- int) {
	alerts, err := w.List(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.Logger.Warn("alert poll failed", zap.Error(err))
		}
		done <- -1
		return
	}

	if len(alerts) > w.lastCount {
		// Delayed fire-and-forget, as the dashboard did. The timer dies
		// with the context so teardown leaves nothing behind.
		go func(snapshot []dto.AlertResponse) {
			t := time.NewTimer(delay)
			defer t.Stop()
			select {
			case <-ctx.Done():
			case <-t.C:
				w.Notify(snapshot)
			}
		}(alerts)
	}
	done <- len(alerts)
}
