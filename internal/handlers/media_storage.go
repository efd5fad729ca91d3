package handlers

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// MediaStore wraps the product-images bucket. Objects are public; their URLs
// are stored on product records as plain strings.
type MediaStore struct {
	client *storage.Client
	bucket string
}

type MediaObject struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMediaStore(ctx context.Context, bucket string) (*MediaStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &MediaStore{client: client, bucket: bucket}, nil
}

// PublicURL returns the HTTPS URL for an object in the bucket.
func (s *MediaStore) PublicURL(name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, strings.TrimLeft(name, "/"))
}

func (s *MediaStore) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	writer := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	return s.PublicURL(name), nil
}

func (s *MediaStore) List(ctx context.Context) ([]MediaObject, error) {
	objects := make([]MediaObject, 0)

	it := s.client.Bucket(s.bucket).Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, MediaObject{
			Name:      attrs.Name,
			URL:       s.PublicURL(attrs.Name),
			Size:      attrs.Size,
			CreatedAt: attrs.Created,
		})
	}

	return objects, nil
}

func (s *MediaStore) Delete(ctx context.Context, name string) error {
	return s.client.Bucket(s.bucket).Object(name).Delete(ctx)
}
