package notification

import (
	"context"
	"fmt"

	"hillescape/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendBookingConfirmation renders the customer confirmation email and runs it
// through the provider chain.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, booking models.Booking) models.NotificationOutcome {
	msg, err := BuildCustomerEmail(booking)
	if err != nil {
		s.Logger.Error("failed to render confirmation email",
			zap.String("reference", booking.BookingReference), zap.Error(err))
		return models.NotificationOutcome{Delivered: false, ErrorDetail: err.Error()}
	}
	return s.Dispatch(ctx, msg)
}

// SendAdminAlert renders the operator alert and runs it through the chain.
// Without a configured admin recipient the alert is dropped.
func (s *DefaultNotificationService) SendAdminAlert(ctx context.Context, booking models.Booking) models.NotificationOutcome {
	if s.AdminEmail == "" {
		return models.NotificationOutcome{Delivered: false, ErrorDetail: "no admin recipient configured"}
	}
	msg, err := BuildAdminEmail(booking, s.AdminEmail)
	if err != nil {
		s.Logger.Error("failed to render admin alert",
			zap.String("reference", booking.BookingReference), zap.Error(err))
		return models.NotificationOutcome{Delivered: false, ErrorDetail: err.Error()}
	}
	return s.Dispatch(ctx, msg)
}

// Dispatch walks the provider chain in order, skipping unconfigured providers
// and stopping at the first success. The console sink at the end of the chain
// cannot fail, so every dispatch against the standard chain terminates
// delivered. Provider panics are contained per attempt.
func (s *DefaultNotificationService) Dispatch(ctx context.Context, msg models.EmailMessage) models.NotificationOutcome {
	dispatchID := uuid.New().String()
	var lastErr string

	for _, n := range s.Chain {
		if !n.Configured() {
			s.Logger.Debug("skipping unconfigured provider",
				zap.String("dispatchId", dispatchID),
				zap.String("provider", n.Name()))
			continue
		}

		if err := s.attempt(ctx, n, msg); err != nil {
			lastErr = err.Error()
			s.Logger.Warn("provider delivery failed",
				zap.String("dispatchId", dispatchID),
				zap.String("provider", n.Name()),
				zap.String("to", msg.To),
				zap.Error(err))
			continue
		}

		s.Logger.Info("email delivered",
			zap.String("dispatchId", dispatchID),
			zap.String("provider", n.Name()),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject))
		return models.NotificationOutcome{Delivered: true, Provider: n.Name(), ErrorDetail: lastErr}
	}

	return models.NotificationOutcome{Delivered: false, ErrorDetail: lastErr}
}

func (s *DefaultNotificationService) attempt(ctx context.Context, n Notifier, msg models.EmailMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider %s panicked: %v", n.Name(), r)
		}
	}()
	return n.Send(ctx, msg)
}

// ProbeProviders reports the configuration state of every chain member.
func (s *DefaultNotificationService) ProbeProviders(ctx context.Context) []models.ProviderProbe {
	probes := make([]models.ProviderProbe, 0, len(s.Chain))
	for _, n := range s.Chain {
		probe := models.ProviderProbe{Provider: n.Name(), Configured: n.Configured()}
		if probe.Configured {
			probe.Message = n.Name() + " configured"
		} else {
			probe.Message = n.Name() + " not configured"
		}
		probes = append(probes, probe)
	}
	return probes
}
