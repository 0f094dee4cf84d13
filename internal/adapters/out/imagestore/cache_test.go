package imagestore_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"commerce/internal/adapters/out/imagestore"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult("OK", args.Error(0))
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) GetImageURLs(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	urls, _ := args.Get(0).([]string)
	return urls, args.Error(1)
}

func TestCachedStore_HitSkipsOrigin(t *testing.T) {
	client := &MockRedisClient{}
	origin := &MockImageStore{}
	client.On("Get", mock.Anything, "images:products/1").Return(`["https://img/1.jpg"]`, nil)

	store := imagestore.NewCachedStore(origin, client, time.Minute, slog.Default())
	urls, err := store.GetImageURLs(t.Context(), "products/1")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/1.jpg"}, urls)
	origin.AssertNotCalled(t, "GetImageURLs", mock.Anything, mock.Anything)
}

func TestCachedStore_MissFillsCache(t *testing.T) {
	client := &MockRedisClient{}
	origin := &MockImageStore{}
	client.On("Get", mock.Anything, "images:products/2").Return("", redis.Nil)
	origin.On("GetImageURLs", mock.Anything, "products/2").Return([]string{"a", "b"}, nil)
	client.On("Set", mock.Anything, "images:products/2", []byte(`["a","b"]`), 30*time.Second).Return(nil)

	store := imagestore.NewCachedStore(origin, client, 30*time.Second, nil)
	urls, err := store.GetImageURLs(t.Context(), "products/2")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, urls)
	client.AssertExpectations(t)
	origin.AssertExpectations(t)
}

func TestCachedStore_RedisDownFallsThrough(t *testing.T) {
	client := &MockRedisClient{}
	origin := &MockImageStore{}
	down := errors.New("dial tcp: connection refused")
	client.On("Get", mock.Anything, mock.Anything).Return("", down)
	client.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(down)
	origin.On("GetImageURLs", mock.Anything, "products/3").Return([]string{"c"}, nil)

	store := imagestore.NewCachedStore(origin, client, 0, nil)
	urls, err := store.GetImageURLs(t.Context(), "products/3")

	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, urls)
}

func TestCachedStore_OriginErrorIsNotCached(t *testing.T) {
	client := &MockRedisClient{}
	origin := &MockImageStore{}
	originErr := errors.New("bucket unavailable")
	client.On("Get", mock.Anything, mock.Anything).Return("", redis.Nil)
	origin.On("GetImageURLs", mock.Anything, "products/4").Return(nil, originErr)

	store := imagestore.NewCachedStore(origin, client, time.Minute, nil)
	_, err := store.GetImageURLs(t.Context(), "products/4")

	assert.ErrorIs(t, err, originErr)
	client.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedStore_MalformedEntryIsReplaced(t *testing.T) {
	for _, cached := range []string{`{"urls":[]}`, `["a",`, `[1,2]`, `null`} {
		t.Run(cached, func(t *testing.T) {
			client := &MockRedisClient{}
			origin := &MockImageStore{}
			client.On("Get", mock.Anything, "images:products/5").Return(cached, nil)
			origin.On("GetImageURLs", mock.Anything, "products/5").Return([]string{"fresh"}, nil)
			client.On("Set", mock.Anything, "images:products/5", []byte(`["fresh"]`), time.Minute).Return(nil)

			store := imagestore.NewCachedStore(origin, client, time.Minute, nil)
			urls, err := store.GetImageURLs(t.Context(), "products/5")

			require.NoError(t, err)
			assert.Equal(t, []string{"fresh"}, urls)
			client.AssertExpectations(t)
		})
	}
}

func TestCachedStore_EmptyListIsAHit(t *testing.T) {
	client := &MockRedisClient{}
	origin := &MockImageStore{}
	client.On("Get", mock.Anything, "images:products/6").Return(`[]`, nil)

	store := imagestore.NewCachedStore(origin, client, time.Minute, nil)
	urls, err := store.GetImageURLs(t.Context(), "products/6")

	require.NoError(t, err)
	assert.NotNil(t, urls)
	assert.Empty(t, urls)
	origin.AssertNotCalled(t, "GetImageURLs", mock.Anything, mock.Anything)
}
