package notification

import (
	"context"
	"errors"
	"fmt"

	"hillescape/models"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// DefaultSenderAccount is the token store account the SMTP provider consults
// before falling back to the static credentials from config.
const DefaultSenderAccount = "default"

type smtpNotifier struct {
	host     string
	port     int
	username string
	password string
	fromName string
	fromAddr string
	tokens   TokenStore
	logger   *zap.Logger
}

// NewSMTPNotifier returns the secondary provider, a plain-auth SMTP sender.
func NewSMTPNotifier(host string, port int, username, password, fromName, fromAddr string, tokens TokenStore, logger *zap.Logger) Notifier {
	return &smtpNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		fromName: fromName,
		fromAddr: fromAddr,
		tokens:   tokens,
		logger:   logger,
	}
}

func (n *smtpNotifier) Name() string { return models.NotifierSMTP }

func (n *smtpNotifier) Configured() bool {
	if n.host == "" {
		return false
	}
	if n.username != "" && n.password != "" {
		return true
	}
	// A connected sender account also makes the provider usable.
	if n.tokens != nil {
		if _, err := n.tokens.Get(context.Background(), DefaultSenderAccount); err == nil {
			return true
		}
	}
	return false
}

func (n *smtpNotifier) Send(ctx context.Context, msg models.EmailMessage) error {
	user, pass, from := n.resolveSender(ctx)
	if user == "" || pass == "" {
		return errors.New("smtp credentials not configured")
	}

	client, err := mail.NewClient(n.host,
		mail.WithPort(n.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	)
	if err != nil {
		return fmt.Errorf("could not initialize smtp client: %w", err)
	}

	m := mail.NewMsg()
	if err := m.FromFormat(n.fromName, from); err != nil {
		return fmt.Errorf("invalid from address %q: %w", from, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// resolveSender prefers a stored sender credential over the static config.
func (n *smtpNotifier) resolveSender(ctx context.Context) (user, pass, from string) {
	if n.tokens != nil {
		if cred, err := n.tokens.Get(ctx, DefaultSenderAccount); err == nil {
			return cred.Username, cred.Password, cred.Email
		} else if !errors.Is(err, ErrCredentialNotFound) {
			n.logger.Warn("sender credential lookup failed", zap.Error(err))
		}
	}
	return n.username, n.password, n.fromAddr
}
