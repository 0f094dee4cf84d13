package ports

import "context"

// ImageStore resolves public image URLs stored under a key prefix such as
// "products/42". An unknown key yields an empty slice, not an error.
type ImageStore interface {
	GetImageURLs(ctx context.Context, key string) ([]string, error)
}
