// Package storetest provides in-memory fakes of the store interfaces for
// repository and service tests.
package storetest

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/portfolio-7b282/portfolio-backend/internal/store"
)

// FakeDocumentStore keeps collections in memory and assigns sequential IDs.
// Any of the Err* fields, when set, is returned by the matching operation.
type FakeDocumentStore struct {
	mu      sync.Mutex
	nextID  int
	data    map[string]map[string]map[string]interface{} // collection -> id -> fields
	created map[string]time.Time                         // "collection/id" -> creation instant

	ErrList      error
	ErrCreate    error
	ErrOverwrite error
	ErrPatch     error
	ErrDelete    error
}

func NewFakeDocumentStore() *FakeDocumentStore {
	return &FakeDocumentStore{
		data:    make(map[string]map[string]map[string]interface{}),
		created: make(map[string]time.Time),
	}
}

func (f *FakeDocumentStore) ListAll(ctx context.Context, collection string) ([]store.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ErrList != nil {
		return nil, f.ErrList
	}

	docs := f.data[collection]
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]store.Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, store.Document{ID: id, Fields: copyFields(docs[id])})
	}
	return out, nil
}

func (f *FakeDocumentStore) Create(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ErrCreate != nil {
		return "", f.ErrCreate
	}

	f.nextID++
	id := fmt.Sprintf("doc-%03d", f.nextID)
	if f.data[collection] == nil {
		f.data[collection] = make(map[string]map[string]interface{})
	}
	f.data[collection][id] = resolveTimestamps(fields)
	f.created[collection+"/"+id] = time.Now()
	return id, nil
}

func (f *FakeDocumentStore) Overwrite(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ErrOverwrite != nil {
		return f.ErrOverwrite
	}
	if _, ok := f.data[collection][id]; !ok {
		return fmt.Errorf("document %s/%s not found", collection, id)
	}
	f.data[collection][id] = resolveTimestamps(fields)
	return nil
}

func (f *FakeDocumentStore) PatchFields(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ErrPatch != nil {
		return f.ErrPatch
	}
	doc, ok := f.data[collection][id]
	if !ok {
		return fmt.Errorf("document %s/%s not found", collection, id)
	}
	for k, v := range resolveTimestamps(fields) {
		doc[k] = v
	}
	return nil
}

func (f *FakeDocumentStore) Delete(ctx context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ErrDelete != nil {
		return f.ErrDelete
	}
	if _, ok := f.data[collection][id]; !ok {
		return fmt.Errorf("document %s/%s not found", collection, id)
	}
	delete(f.data[collection], id)
	return nil
}

// Get returns a stored document's fields directly, for assertions.
func (f *FakeDocumentStore) Get(collection, id string) (map[string]interface{}, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, ok := f.data[collection][id]
	if !ok {
		return nil, false
	}
	return copyFields(doc), true
}

// Seed inserts a document with a caller-chosen ID.
func (f *FakeDocumentStore) Seed(collection, id string, fields map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.data[collection] == nil {
		f.data[collection] = make(map[string]map[string]interface{})
	}
	f.data[collection][id] = copyFields(fields)
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// resolveTimestamps mimics the backend assigning server timestamps.
func resolveTimestamps(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if v == store.ServerTimestamp {
			out[k] = time.Now().UTC()
			continue
		}
		out[k] = v
	}
	return out
}

// FakeObjectStore records uploads and returns deterministic URLs.
type FakeObjectStore struct {
	mu      sync.Mutex
	Uploads []FakeUpload
	Err     error
}

type FakeUpload struct {
	Key         string
	ContentType string
	Size        int64
}

func NewFakeObjectStore() *FakeObjectStore {
	return &FakeObjectStore{}
}

func (f *FakeObjectStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}

	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return "", err
	}

	f.Uploads = append(f.Uploads, FakeUpload{Key: key, ContentType: contentType, Size: n})
	return "https://fake.storage/" + key, nil
}
