package notify

import "context"

// NoOpPublisher discards every event. Used when no queue is configured,
// typically in local development.
type NoOpPublisher struct{}

var _ Publisher = (*NoOpPublisher)(nil)

func (NoOpPublisher) Publish(ctx context.Context, event *Event) error {
	return nil
}
