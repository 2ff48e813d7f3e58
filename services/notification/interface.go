package notification

import (
	"context"

	"hillescape/models"

	"go.uber.org/zap"
)

// Notifier is a single delivery mechanism in the fallback chain.
type Notifier interface {
	Name() string
	// Configured reports whether the provider has usable credentials.
	// Unconfigured providers are skipped without counting as failures.
	Configured() bool
	Send(ctx context.Context, msg models.EmailMessage) error
}

// NotificationService dispatches booking emails through an ordered provider
// chain. Dispatching is best effort: it never returns an error and provider
// failures never reach the booking flow.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) models.NotificationOutcome
	SendAdminAlert(ctx context.Context, booking models.Booking) models.NotificationOutcome
	Dispatch(ctx context.Context, msg models.EmailMessage) models.NotificationOutcome
	ProbeProviders(ctx context.Context) []models.ProviderProbe
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Chain      []Notifier
	AdminEmail string
	Logger     *zap.Logger
}

// NewDefaultNotificationService builds the standard chain: Resend first,
// SMTP second, console sink last.
func NewDefaultNotificationService(primary, secondary Notifier, adminEmail string, logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{
		Chain:      []Notifier{primary, secondary, NewConsoleNotifier(logger)},
		AdminEmail: adminEmail,
		Logger:     logger,
	}
}
