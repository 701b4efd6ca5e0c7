package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rakshak-ai/rakshak/pkg/service/notify"
)

// Notify holds CLI flags for the outbound emergency alert channel
type Notify struct {
	slackBotToken    string `masq:"secret"`
	emergencyChannel string
}

// Flags returns CLI flags for notification configuration
func (n *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for emergency alerts (alerts are simulated when empty)",
			Sources:     cli.EnvVars("RAKSHAK_SLACK_BOT_TOKEN"),
			Destination: &n.slackBotToken,
		},
		&cli.StringFlag{
			Name:        "emergency-channel",
			Usage:       "Slack channel ID receiving emergency alerts",
			Sources:     cli.EnvVars("RAKSHAK_EMERGENCY_CHANNEL"),
			Destination: &n.emergencyChannel,
		},
	}
}

// EmergencyChannel returns the destination channel for emergency alerts
func (n *Notify) EmergencyChannel() string {
	return n.emergencyChannel
}

// Configure creates the notification service. Returns nil when no bot
// token is configured; emergency dispatches then use simulated call
// identifiers.
func (n *Notify) Configure() (notify.Service, error) {
	if n.slackBotToken == "" {
		return nil, nil
	}
	if n.emergencyChannel == "" {
		return nil, goerr.New("emergency-channel is required when slack-bot-token is set")
	}

	svc, err := notify.NewSlack(n.slackBotToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack notifier")
	}

	return svc, nil
}
