package pubsub

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListen_StopsOnCancel(t *testing.T) {
	ch := make(chan Event[int], 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Listen(ctx, ch, func(Event[int]) {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "listener did not stop")
	}
}

func TestListen_StopsOnClose(t *testing.T) {
	ch := make(chan Event[int], 2)
	ch <- Event[int]{Payload: 1}
	close(ch)

	var got []int
	Listen(context.Background(), ch, func(e Event[int]) { got = append(got, e.Payload) })
	require.Equal(t, []int{1}, got)
}

func TestWatch_DeliversEvents(t *testing.T) {
	broker := NewBroker[string]()
	ctx, cancel := context.WithCancel(context.Background())

	var count atomic.Int32
	done := Watch[string](ctx, broker, func(e Event[string]) {
		if e.Payload == "reload" {
			count.Add(1)
		}
	})

	require.Eventually(t, func() bool { return broker.SubscriberCount() == 1 }, time.Second, 5*time.Millisecond)
	broker.Publish(ChangedEvent, "reload")
	broker.Publish(ChangedEvent, "reload")
	require.Eventually(t, func() bool { return count.Load() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "watch did not stop")
	}
	broker.Close()
}
