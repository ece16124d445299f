package store

import (
	"context"
	"fmt"
	"io"
	"net/url"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// BucketStore implements ObjectStore on a Cloud Storage for Firebase
// bucket. Every upload gets a download token so the returned URL stays
// valid without further signing.
type BucketStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewBucketStore(bucket *gcs.BucketHandle, bucketName string) *BucketStore {
	return &BucketStore{bucket: bucket, bucketName: bucketName}
}

func (s *BucketStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	token := uuid.NewString()

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return downloadURL(s.bucketName, key, token), nil
}

// downloadURL composes the token-authenticated Firebase download URL for an
// uploaded object.
func downloadURL(bucket, key, token string) string {
	return fmt.Sprintf(
		"https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(key), token,
	)
}
