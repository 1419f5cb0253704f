package notify

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// FromConfig builds the notifier selected by configuration: the Slack API
// client when a bot token is present and enabled, otherwise the generic
// webhook.
func FromConfig() (Notifier, error) {
	if viper.GetBool("notifications.slack.enabled") {
		if token := os.Getenv("SLACK_BOT_USER_TOKEN"); token != "" {
			return NewSlackNotifier(token, viper.GetString("notifications.slack.channel")), nil
		}
	}

	if url := viper.GetString("notifications.webhook.url"); url != "" {
		return NewWebhookNotifier(url), nil
	}

	return nil, fmt.Errorf("no notifier configured: set SLACK_BOT_USER_TOKEN or notifications.webhook.url")
}
