package notification

import (
	"context"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"

	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// NewNotifier returns an SMTP notifier when SMTP is configured and a logging
// notifier otherwise.
func NewNotifier(cfg config.SMTPConfig, logger *zap.Logger) Notifier {
	if cfg.Enabled() {
		return NewSMTPNotifier(cfg, logger)
	}
	return NewLogNotifier(logger)
}
