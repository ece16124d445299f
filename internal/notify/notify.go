// Package notify delivers owner-facing notifications for new contact
// messages. Delivery is best-effort: a lost email never fails the
// submission that triggered it.
package notify

import (
	"context"

	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/domain"
)

type Notifier interface {
	ContactReceived(ctx context.Context, msg domain.ContactMessage) error
}

// NopNotifier is used when no email provider is configured.
type NopNotifier struct{}

func (NopNotifier) ContactReceived(ctx context.Context, msg domain.ContactMessage) error {
	return nil
}
