package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/domain"
	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/repository"
	"github.com/portfolio-7b282/portfolio-backend/internal/notify"
)

var (
	// ErrMissingFields is returned when a required field is blank.
	ErrMissingFields = errors.New("name, email, subject and message are required")
	// ErrSubmitFailed is the generic failure the public submitter sees.
	// The underlying error is logged, never propagated.
	ErrSubmitFailed = errors.New("failed to send message")
)

// SubmitInput is the public contact form. All fields are required.
type SubmitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Service struct {
	repo     *repository.Repo
	notifier notify.Notifier
}

func NewService(repo *repository.Repo, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Service{repo: repo, notifier: notifier}
}

// Submit appends one document to the contacts collection. Single attempt,
// no retry; the caller only ever learns success or a generic failure, never
// the document ID.
func (s *Service) Submit(ctx context.Context, in SubmitInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Subject) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return ErrMissingFields
	}

	id, err := s.repo.Create(ctx, in.Name, in.Email, in.Subject, in.Message)
	if err != nil {
		log.Printf("Error sending contact form: %v", err)
		return ErrSubmitFailed
	}

	// Owner notification is best-effort; the submission already succeeded.
	msg := domain.ContactMessage{
		ID:      id,
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  domain.StatusUnread,
	}
	if err := s.notifier.ContactReceived(ctx, msg); err != nil {
		log.Printf("Error notifying owner of contact message: %v", err)
	}

	return nil
}
