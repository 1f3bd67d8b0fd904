package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockRedisClient mocks the two commands the cache issues.
type mockRedisClient struct {
	mock.Mock
}

func (m *mockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	cmd := redis.NewStringCmd(ctx)
	if err := args.Error(1); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(args.String(0))
	}
	return cmd
}

func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	cmd := redis.NewStatusCmd(ctx)
	if err := args.Error(0); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("OK")
	}
	return cmd
}

func TestRedis_Get(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Get", mock.Anything, "aleoresto:place:1").Return(`{"name":"Bouchon","types":["restaurant"]}`, nil)

	var got entry
	ok, err := NewRedis(client).Get(context.Background(), "place:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bouchon", got.Name)
	client.AssertExpectations(t)
}

func TestRedis_GetMiss(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Get", mock.Anything, "aleoresto:absent").Return("", redis.Nil)

	var got entry
	ok, err := NewRedis(client).Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_GetError(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Get", mock.Anything, "aleoresto:k").Return("", errors.New("connection refused"))

	var got entry
	ok, err := NewRedis(client).Get(context.Background(), "k", &got)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedis_Set(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Set", mock.Anything, "aleoresto:place:1", []byte(`{"name":"Bouchon","types":null}`), 10*time.Minute).Return(nil)

	err := NewRedis(client).Set(context.Background(), "place:1", entry{Name: "Bouchon"}, 10*time.Minute)
	require.NoError(t, err)
	client.AssertExpectations(t)
}
