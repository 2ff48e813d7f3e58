package notification

import (
	"context"
	"fmt"
	"strings"

	"hillescape/models"

	"github.com/resend/resend-go/v2"
)

type resendNotifier struct {
	client *resend.Client
	from   string
}

// NewResendNotifier returns the primary provider. The client is only created
// when the API key looks valid ("re_" prefix), otherwise the provider reports
// itself unconfigured and the chain moves on.
func NewResendNotifier(apiKey, from string) Notifier {
	n := &resendNotifier{from: from}
	if strings.HasPrefix(apiKey, "re_") {
		n.client = resend.NewClient(apiKey)
	}
	return n
}

func (n *resendNotifier) Name() string { return models.NotifierResend }

func (n *resendNotifier) Configured() bool { return n.client != nil }

func (n *resendNotifier) Send(ctx context.Context, msg models.EmailMessage) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
	}
	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("resend returned no message id")
	}
	return nil
}
