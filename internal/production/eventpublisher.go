package production

import (
	"context"

	"github.com/comalice/langtour/internal/core"
)

// ChannelPublisher forwards lesson events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- core.LessonEvent
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- core.LessonEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event core.LessonEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.ch <- event:
		return nil
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
