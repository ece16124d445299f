package repository

import (
	"context"
	"errors"
	"log"

	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/domain"
	"github.com/portfolio-7b282/portfolio-backend/internal/store"
)

const Collection = "contacts"

var ErrNotFound = errors.New("contact message not found")

// Repo mirrors the "contacts" collection.
type Repo struct {
	docs store.DocumentStore
}

func NewRepo(docs store.DocumentStore) *Repo {
	return &Repo{docs: docs}
}

// List reads every contact message. Malformed documents are logged and
// skipped.
func (r *Repo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	docs, err := r.docs.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ContactMessage, 0, len(docs))
	for _, doc := range docs {
		m, err := domain.Decode(doc)
		if err != nil {
			log.Printf("skipping contact document: %v", err)
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Create appends one message with status fixed to unread and a
// server-assigned creation timestamp. The document ID stays internal.
func (r *Repo) Create(ctx context.Context, name, email, subject, message string) (string, error) {
	return r.docs.Create(ctx, Collection, map[string]interface{}{
		"name":      name,
		"email":     email,
		"subject":   subject,
		"message":   message,
		"status":    domain.StatusUnread,
		"createdAt": store.ServerTimestamp,
	})
}

// ToggleStatus flips one message between unread and read. Only the status
// field is patched; on failure the document is left unchanged.
func (r *Repo) ToggleStatus(ctx context.Context, id string) error {
	messages, err := r.List(ctx)
	if err != nil {
		return err
	}

	for _, m := range messages {
		if m.ID != id {
			continue
		}
		return r.docs.PatchFields(ctx, Collection, id, map[string]interface{}{
			"status": domain.ToggledStatus(m.Status),
		})
	}
	return ErrNotFound
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, Collection, id)
}
