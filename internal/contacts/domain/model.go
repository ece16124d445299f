package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/portfolio-7b282/portfolio-backend/internal/store"
)

// Message statuses. Every message starts unread; status is the only field
// ever mutated after creation.
const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

var ErrMalformedDocument = errors.New("malformed contact document")

// ContactMessage is one inbound inquiry from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ToggledStatus returns the flipped status, so unread -> read -> unread
// round-trips.
func ToggledStatus(current string) string {
	if current == StatusUnread {
		return StatusRead
	}
	return StatusUnread
}

// Decode shapes a raw store document into a ContactMessage. Documents
// missing an email or message body are reported as malformed.
func Decode(doc store.Document) (ContactMessage, error) {
	email := store.AsString(doc.Fields, "email")
	body := store.AsString(doc.Fields, "message")
	if email == "" || body == "" {
		return ContactMessage{}, fmt.Errorf("%w: %s", ErrMalformedDocument, doc.ID)
	}

	status := store.AsString(doc.Fields, "status")
	if status != StatusRead {
		status = StatusUnread
	}

	return ContactMessage{
		ID:        doc.ID,
		Name:      store.AsString(doc.Fields, "name"),
		Email:     email,
		Subject:   store.AsString(doc.Fields, "subject"),
		Message:   body,
		Status:    status,
		CreatedAt: store.AsTime(doc.Fields, "createdAt"),
	}, nil
}
