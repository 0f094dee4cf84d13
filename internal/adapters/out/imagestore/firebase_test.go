package imagestore_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"commerce/internal/adapters/out/imagestore"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const testBucket = "shop.appspot.com"

// listingServer answers Cloud Storage JSON API object listings and records
// the prefix and page token of every request.
type listingServer struct {
	mu       sync.Mutex
	prefixes []string
	tokens   []string
}

// handler serves pages keyed by page token, "" being the first page.
func (ls *listingServer) handler(status int, pages map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/b/"+testBucket+"/o") {
			http.NotFound(w, r)
			return
		}

		token := r.URL.Query().Get("pageToken")
		ls.mu.Lock()
		ls.prefixes = append(ls.prefixes, r.URL.Query().Get("prefix"))
		ls.tokens = append(ls.tokens, token)
		ls.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(pages[token]))
	}
}

func newTestBucket(t *testing.T, handler http.Handler) *storage.BucketHandle {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := storage.NewClient(t.Context(),
		option.WithEndpoint(server.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client.Bucket(testBucket)
}

func TestFirebaseStore_GetImageURLs(t *testing.T) {
	ls := &listingServer{}
	bucket := newTestBucket(t, ls.handler(http.StatusOK, map[string]string{
		"": `{
			"kind": "storage#objects",
			"items": [
				{"name": "products/42/", "bucket": "shop.appspot.com"},
				{"name": "products/42/front.jpg", "bucket": "shop.appspot.com",
				 "metadata": {"firebaseStorageDownloadTokens": "tok-1,tok-2"}}
			],
			"nextPageToken": "page-2"
		}`,
		"page-2": `{
			"kind": "storage#objects",
			"items": [
				{"name": "products/42/back side.jpg", "bucket": "shop.appspot.com"}
			]
		}`,
	}))

	store, err := imagestore.NewFirebaseStore(bucket, "https://cdn.example.am/v0/", time.Second)
	require.NoError(t, err)

	urls, err := store.GetImageURLs(t.Context(), "products/42")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.example.am/v0/b/shop.appspot.com/o/products%2F42%2Ffront.jpg?alt=media&token=tok-1",
		"https://cdn.example.am/v0/b/shop.appspot.com/o/products%2F42%2Fback%20side.jpg?alt=media",
	}, urls)
	assert.Equal(t, []string{"products/42/", "products/42/"}, ls.prefixes)
	assert.Equal(t, []string{"", "page-2"}, ls.tokens)
}

func TestFirebaseStore_EmptyFolder(t *testing.T) {
	ls := &listingServer{}
	bucket := newTestBucket(t, ls.handler(http.StatusOK, map[string]string{
		"": `{"kind": "storage#objects"}`,
	}))

	store, err := imagestore.NewFirebaseStore(bucket, "", 0)
	require.NoError(t, err)

	urls, err := store.GetImageURLs(t.Context(), "products/1")

	require.NoError(t, err)
	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}

func TestFirebaseStore_UpstreamError(t *testing.T) {
	ls := &listingServer{}
	bucket := newTestBucket(t, ls.handler(http.StatusForbidden, map[string]string{
		"": `{"error": {"code": 403, "message": "permission denied"}}`,
	}))

	store, err := imagestore.NewFirebaseStore(bucket, "", time.Second)
	require.NoError(t, err)

	_, err = store.GetImageURLs(t.Context(), "products/1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list products/1/")
}

func TestNewFirebaseStore_RequiresBucket(t *testing.T) {
	_, err := imagestore.NewFirebaseStore(nil, "", 0)

	assert.ErrorIs(t, err, imagestore.ErrBucketIsRequired)
}

func TestNoopStore(t *testing.T) {
	urls, err := imagestore.NoopStore{}.GetImageURLs(t.Context(), "products/1")

	require.NoError(t, err)
	assert.Empty(t, urls)
}
