package pubsub

import "context"

// Listen calls fn for every event received on ch until ctx is cancelled or
// the channel is closed. It blocks; run it in its own goroutine.
func Listen[T any](ctx context.Context, ch <-chan Event[T], fn func(Event[T])) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			fn(event)
		}
	}
}

// Watch subscribes to s and runs fn for each event in a new goroutine. The
// returned channel is closed once the listener stops.
func Watch[T any](ctx context.Context, s Subscriber[T], fn func(Event[T])) <-chan struct{} {
	ch := s.Subscribe(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		Listen(ctx, ch, fn)
	}()
	return done
}
