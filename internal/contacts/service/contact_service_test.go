package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/domain"
	"github.com/portfolio-7b282/portfolio-backend/internal/contacts/repository"
	"github.com/portfolio-7b282/portfolio-backend/internal/store/storetest"
)

type recordingNotifier struct {
	received []domain.ContactMessage
	err      error
}

func (n *recordingNotifier) ContactReceived(ctx context.Context, msg domain.ContactMessage) error {
	n.received = append(n.received, msg)
	return n.err
}

func validInput() SubmitInput {
	return SubmitInput{Name: "A", Email: "a@x.com", Subject: "Hi", Message: "test"}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one unread document", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		svc := NewService(repository.NewRepo(docs), nil)

		require.NoError(t, svc.Submit(ctx, validInput()))

		list, err := repository.NewRepo(docs).List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, domain.StatusUnread, list[0].Status)
		assert.False(t, list[0].CreatedAt.IsZero())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		svc := NewService(repository.NewRepo(storetest.NewFakeDocumentStore()), nil)

		for _, in := range []SubmitInput{
			{Email: "a@x.com", Subject: "Hi", Message: "m"},
			{Name: "A", Subject: "Hi", Message: "m"},
			{Name: "A", Email: "a@x.com", Message: "m"},
			{Name: "A", Email: "a@x.com", Subject: "Hi", Message: "   "},
		} {
			require.ErrorIs(t, svc.Submit(ctx, in), ErrMissingFields)
		}
	})

	t.Run("write failure surfaces only the generic error", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		docs.ErrCreate = errors.New("permission denied: rules")
		svc := NewService(repository.NewRepo(docs), nil)

		err := svc.Submit(ctx, validInput())
		require.ErrorIs(t, err, ErrSubmitFailed)
		assert.NotContains(t, err.Error(), "permission denied")
	})

	t.Run("notifier gets the message on success", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc := NewService(repository.NewRepo(storetest.NewFakeDocumentStore()), notifier)

		require.NoError(t, svc.Submit(ctx, validInput()))
		require.Len(t, notifier.received, 1)
		assert.Equal(t, "a@x.com", notifier.received[0].Email)
	})

	t.Run("notifier failure does not fail the submission", func(t *testing.T) {
		notifier := &recordingNotifier{err: errors.New("smtp exploded")}
		svc := NewService(repository.NewRepo(storetest.NewFakeDocumentStore()), notifier)

		require.NoError(t, svc.Submit(ctx, validInput()))
	})

	t.Run("no notification when the write failed", func(t *testing.T) {
		docs := storetest.NewFakeDocumentStore()
		docs.ErrCreate = errors.New("store down")
		notifier := &recordingNotifier{}
		svc := NewService(repository.NewRepo(docs), notifier)

		require.Error(t, svc.Submit(ctx, validInput()))
		assert.Empty(t, notifier.received)
	})
}
