package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// BlobInfo is one entry of a single-level bucket listing. Folder
// entries carry only a prefix and no object behind them, which is how
// the storage browser tells directories from files.
type BlobInfo struct {
	Key       string
	IsFolder  bool
	CreatedAt time.Time
}

// BlobStore is the remote blob-store facet: non-overwriting upload by
// path, one-level listing with folder semantics, and public retrieval
// URLs derived from the stored path.
type BlobStore interface {
	Upload(ctx context.Context, bucket, key string, r io.Reader, contentType string) error
	List(ctx context.Context, bucket, prefix string) ([]BlobInfo, error)
	PublicURL(bucket, key string) string
}

type gcsBlobStore struct {
	client *storage.Client
}

func NewGCSBlobStore(ctx context.Context) (BlobStore, error) {
	var opts []option.ClientOption
	if creds := os.Getenv("GCS_CREDENTIALS_FILE"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &gcsBlobStore{client: client}, nil
}

func (s *gcsBlobStore) Upload(ctx context.Context, bucket, key string, r io.Reader, contentType string) error {
	obj := s.client.Bucket(bucket).Object(key)

	// Keys carry an upload timestamp so they never repeat; the
	// precondition turns an unexpected collision into an error instead
	// of an overwrite.
	w := obj.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *gcsBlobStore) List(ctx context.Context, bucket, prefix string) ([]BlobInfo, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	it := s.client.Bucket(bucket).Objects(ctx, &storage.Query{
		Prefix:    prefix,
		Delimiter: "/",
	})

	var entries []BlobInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		if attrs.Prefix != "" {
			entries = append(entries, BlobInfo{
				Key:      strings.TrimSuffix(attrs.Prefix, "/"),
				IsFolder: true,
			})
			continue
		}
		entries = append(entries, BlobInfo{
			Key:       attrs.Name,
			CreatedAt: attrs.Created,
		})
	}
	return entries, nil
}

func (s *gcsBlobStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, key)
}
