package notify

import "context"

// Notifier delivers a summary message to an external channel.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
