package notification

import (
	"context"

	"hillescape/models"

	"go.uber.org/zap"
)

// consoleNotifier is the terminal sink of the chain. It only formats and
// writes the record, so it cannot fail; a booking is never lost silently
// even with every real provider down.
type consoleNotifier struct {
	logger *zap.Logger
}

// NewConsoleNotifier returns the always-available local-log sink.
func NewConsoleNotifier(logger *zap.Logger) Notifier {
	return &consoleNotifier{logger: logger}
}

func (n *consoleNotifier) Name() string { return models.NotifierConsole }

func (n *consoleNotifier) Configured() bool { return true }

func (n *consoleNotifier) Send(_ context.Context, msg models.EmailMessage) error {
	n.logger.Info("email logged to console",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("bodyBytes", len(msg.HTMLBody)),
	)
	return nil
}
