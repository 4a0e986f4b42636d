package attendance

import (
	"context"
	"testing"
)

func TestListenerStopIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Listener{userID: "u1", cancel: cancel, done: make(chan struct{})}
	go func() {
		<-ctx.Done()
		close(l.done)
	}()

	l.Stop()
	l.Stop() // must not panic or block

	select {
	case <-l.done:
	default:
		t.Fatal("listener done channel not closed after Stop")
	}
}
