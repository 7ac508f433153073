package watch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/dto"
)

// scriptedList replays a fixed sequence of responses, then keeps returning
// the last one. A negative count means "fail this fetch".
type scriptedList struct {
	mu     sync.Mutex
	counts []int
	polls  int
}

func (s *scriptedList) list(context.Context) ([]dto.AlertResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.polls
	if i >= len(s.counts) {
		i = len(s.counts) - 1
	}
	s.polls++
	n := s.counts[i]
	if n < 0 {
		return nil, errors.New("boom")
	}
	alerts := make([]dto.AlertResponse, n)
	return alerts, nil
}

func (s *scriptedList) pollCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}

func runScript(t *testing.T, counts []int, minPolls int) int32 {
	t.Helper()

	script := &scriptedList{counts: counts}
	var notifications int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &Watcher{
		List:        script.list,
		Notify:      func([]dto.AlertResponse) { atomic.AddInt32(&notifications, 1) },
		Logger:      zap.NewNop(),
		Interval:    2 * time.Millisecond,
		NotifyDelay: time.Millisecond,
	}

	stopped := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(stopped)
	}()

	deadline := time.After(5 * time.Second)
	for script.pollCount() < minPolls {
		select {
		case <-deadline:
			t.Fatalf("only %d polls before deadline", script.pollCount())
		case <-time.After(2 * time.Millisecond):
		}
	}
	// Let any pending delayed notification land before tearing down.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
	return atomic.LoadInt32(&notifications)
}

func TestNotifiesOnlyOnIncreases(t *testing.T) {
	// 0 -> 0 -> 3 -> 3 -> 5: two increases, two notifications. Steady
	// states stay quiet.
	got := runScript(t, []int{0, 0, 3, 3, 5}, 6)
	require.EqualValues(t, 2, got)
}

func TestFailedFetchKeepsLastCount(t *testing.T) {
	// The failure between 2 and 3 must not reset the baseline: 2 -> 3 is
	// still exactly one new-alert transition.
	got := runScript(t, []int{2, -1, 3, 3}, 5)
	require.EqualValues(t, 2, got)
}

func TestNoNotificationOnShrink(t *testing.T) {
	// Resolving alerts lowers the count; that is never news.
	got := runScript(t, []int{4, 2, 2}, 4)
	require.EqualValues(t, 1, got)
}
