package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackNotifier posts messages to a Slack channel using a bot token.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a notifier for the given bot token and channel.
// opts are passed through to the underlying client; tests use
// slack.OptionAPIURL to point at a local server.
func NewSlackNotifier(token, channel string, opts ...slack.Option) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(token, opts...),
		channel: channel,
	}
}

// Notify posts the message to the configured channel.
func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	if s.channel == "" {
		return fmt.Errorf("slack channel is not configured")
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	return nil
}
