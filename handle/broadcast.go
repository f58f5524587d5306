package handle

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
)

// Broadcaster is a Deleter which publishes every deleted resource to its
// subscribers, after handing it to the decorated deleter.
type Broadcaster[R any] struct {
	next Deleter[R]
	cast *caster.Caster // broadcaster for deletion events
	done chan struct{}
	once sync.Once
}

// NewBroadcaster decorates next, which may be nil.
func NewBroadcaster[R any](next Deleter[R]) *Broadcaster[R] {
	return &Broadcaster[R]{
		next: next,
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
}

// Delete deletes r with the decorated deleter and publishes it. Publishing
// never blocks: subscribers which are not ready to receive miss the event.
func (b *Broadcaster[R]) Delete(r R) {
	if b.next != nil {
		b.next.Delete(r)
	}
	if !b.cast.TryPub(r) {
		tracer().Debugf("handle: deletion not published, broadcaster closed")
	}
}

// Subscribe returns a channel receiving deleted resources, buffered for n
// messages. Events arriving while the buffer is full are dropped. The
// channel is closed when ctx is done or the broadcaster is closed.
func (b *Broadcaster[R]) Subscribe(ctx context.Context, n uint) (<-chan R, error) {
	select {
	case <-b.done:
		return nil, ErrClosed
	default:
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// the caster must not close sub on its own, as we unsubscribe on ctx.Done
	sub, ok := b.cast.Sub(context.Background(), n)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan R, n)
	go func() {
		defer close(out)
		for {
			select {
			case m, ok := <-sub:
				if !ok { // caster closed
					return
				}
				r, _ := m.(R)
				select {
				case out <- r:
				default:
					tracer().Debugf("handle: subscriber busy, deletion event dropped")
				}
			case <-b.done:
				return
			case <-ctx.Done():
				b.cast.Unsub(sub)
				return
			}
		}
	}()
	return out, nil
}

// Close stops publishing. Subscriptions are closed.
func (b *Broadcaster[R]) Close() {
	b.once.Do(func() {
		close(b.done)
		b.cast.Close()
	})
}
