// Package imagestore resolves product image URLs. The origin is a Firebase
// Storage bucket read through the Cloud Storage client; a Redis read-through
// cache can be layered on top.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

const (
	DefaultDownloadBaseURL = "https://firebasestorage.googleapis.com/v0"
	DefaultTimeout         = 5 * time.Second

	// Firebase keeps the download tokens of an object in its custom metadata,
	// comma separated.
	downloadTokensKey = "firebaseStorageDownloadTokens"
)

var ErrBucketIsRequired = errors.New("firebase storage bucket is required")

// FirebaseStore lists the objects stored under a key prefix and returns their
// Firebase download URLs.
type FirebaseStore struct {
	bucket          *storage.BucketHandle
	downloadBaseURL string
	timeout         time.Duration
}

// NewFirebaseStore creates a store reading bucket. An empty downloadBaseURL
// means DefaultDownloadBaseURL; a non-positive timeout means DefaultTimeout.
func NewFirebaseStore(bucket *storage.BucketHandle, downloadBaseURL string, timeout time.Duration) (*FirebaseStore, error) {
	if bucket == nil {
		return nil, ErrBucketIsRequired
	}
	downloadBaseURL = strings.TrimRight(strings.TrimSpace(downloadBaseURL), "/")
	if downloadBaseURL == "" {
		downloadBaseURL = DefaultDownloadBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &FirebaseStore{bucket: bucket, downloadBaseURL: downloadBaseURL, timeout: timeout}, nil
}

// GetImageURLs returns one download URL per object under key, in listing
// order, across every page of the listing. Folder placeholders are skipped.
func (s *FirebaseStore) GetImageURLs(ctx context.Context, key string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prefix := strings.TrimSuffix(key, "/") + "/"
	query := &storage.Query{Prefix: prefix}
	if err := query.SetAttrSelection([]string{"Name", "Bucket", "Metadata"}); err != nil {
		return nil, err
	}

	urls := make([]string, 0)
	it := s.bucket.Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, err)
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		urls = append(urls, s.downloadURL(attrs))
	}

	return urls, nil
}

// downloadURL builds the URL the Firebase SDKs hand out. Objects uploaded
// outside Firebase have no token and are only readable on public buckets.
func (s *FirebaseStore) downloadURL(attrs *storage.ObjectAttrs) string {
	u := fmt.Sprintf("%s/b/%s/o/%s?alt=media",
		s.downloadBaseURL, url.PathEscape(attrs.Bucket), url.PathEscape(attrs.Name))

	token, _, _ := strings.Cut(attrs.Metadata[downloadTokensKey], ",")
	if token = strings.TrimSpace(token); token != "" {
		u += "&token=" + url.QueryEscape(token)
	}
	return u
}

// NoopStore is used when no bucket is configured. It never returns images.
type NoopStore struct{}

func (NoopStore) GetImageURLs(context.Context, string) ([]string, error) {
	return []string{}, nil
}
