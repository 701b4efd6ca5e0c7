package notify

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// slackService implements Service by posting the alert to a Slack
// channel. The destination is the channel ID of the responder team; the
// returned message timestamp serves as the call identifier.
type slackService struct {
	client *slack.Client
}

// NewSlack creates a Slack-backed notification service
func NewSlack(botToken string) (Service, error) {
	if botToken == "" {
		return nil, goerr.New("slack bot token is required")
	}

	return &slackService{client: slack.New(botToken)}, nil
}

func (s *slackService) Notify(ctx context.Context, destination, message string) (string, error) {
	_, ts, err := s.client.PostMessageContext(ctx, destination,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to post alert message",
			goerr.V("destination", destination))
	}

	return ts, nil
}
