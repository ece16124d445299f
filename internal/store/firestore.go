package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreStore implements DocumentStore on top of Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	out := make([]Document, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		out = append(out, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return out, nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, translateSentinels(fields))
	if err != nil {
		return "", fmt.Errorf("create in %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Overwrite(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, translateSentinels(fields)); err != nil {
		return fmt.Errorf("overwrite %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) PatchFields(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range translateSentinels(fields) {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("patch %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// translateSentinels swaps the package's ServerTimestamp sentinel for the
// Firestore one so callers never import the SDK.
func translateSentinels(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = firestore.ServerTimestamp
			continue
		}
		out[k] = v
	}
	return out
}
