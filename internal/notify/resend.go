package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"

	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/domain"
)

// ResendNotifier emails the site owner about each new contact message via
// the Resend API.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (n *ResendNotifier) ContactReceived(ctx context.Context, msg domain.ContactMessage) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: fmt.Sprintf("New portfolio message: %s", msg.Subject),
		Html: fmt.Sprintf(
			"<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
			html.EscapeString(msg.Name),
			html.EscapeString(msg.Email),
			html.EscapeString(msg.Message),
		),
		ReplyTo: msg.Email,
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}
