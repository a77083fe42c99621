// Package mail delivers owner notifications over SMTP.
package mail

import (
	"context"
	"log/slog"

	"biaresh/config"
	deliverycontext "biaresh/internal/delivery/context"
	"biaresh/internal/domain/service"
	"biaresh/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

// Sender is satisfied by *gomail.Dialer
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type smtpNotifier struct {
	sender Sender
	from   string
	to     string
	logger *slog.Logger
}

// logNotifier only logs; used when no SMTP relay is configured.
type logNotifier struct {
	logger *slog.Logger
}

// NewOwnerNotifier returns an SMTP notifier when mail.host and mail.ownerEmail
// are set, otherwise a notifier that only logs.
func NewOwnerNotifier(params Params) service.OwnerNotifier {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" || cfg.OwnerEmail == "" {
		params.Logger.Info("Mail not configured, owner notifications are logged only")

		return &logNotifier{logger: params.Logger}
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	params.Logger.Info("Owner notifications via SMTP",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
	)

	return NewSMTPNotifier(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), from, cfg.OwnerEmail, params.Logger)
}

// NewSMTPNotifier sends every notice from `from` to `to` through sender
func NewSMTPNotifier(sender Sender, from, to string, logger *slog.Logger) service.OwnerNotifier {
	return &smtpNotifier{sender: sender, from: from, to: to, logger: logger}
}

func (n *smtpNotifier) NotifyOwner(ctx context.Context, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", n.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.sender.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send owner email")
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("Owner notified by email", slog.String("subject", subject))

	return nil
}

func (n *logNotifier) NotifyOwner(ctx context.Context, subject, body string) error {
	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("Owner notification",
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
