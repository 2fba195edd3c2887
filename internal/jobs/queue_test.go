package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLock_AcquireIsExclusive(t *testing.T) {
	// Подготовка
	mr, client := setupTestRedis(t)
	lock := NewRedisLock(client, time.Minute)
	ctx := context.Background()

	// Действие
	first, err := lock.Acquire(ctx, models.JobKindNationalStats)
	require.NoError(t, err)
	second, err := lock.Acquire(ctx, models.JobKindNationalStats)
	require.NoError(t, err)

	// Проверки
	assert.NotEmpty(t, first)
	assert.Empty(t, second)
	stored, err := mr.Get(LockKey(models.JobKindNationalStats))
	require.NoError(t, err)
	assert.Equal(t, first, stored)
	assert.Equal(t, time.Minute, mr.TTL(LockKey(models.JobKindNationalStats)))
}

func TestRedisLock_ReleaseByOwner(t *testing.T) {
	// Подготовка
	mr, client := setupTestRedis(t)
	lock := NewRedisLock(client, time.Minute)
	ctx := context.Background()
	token, err := lock.Acquire(ctx, models.JobKindNationalStats)
	require.NoError(t, err)

	// Действие
	err = lock.Release(ctx, models.JobKindNationalStats, token)

	// Проверки
	require.NoError(t, err)
	assert.False(t, mr.Exists(LockKey(models.JobKindNationalStats)))
}

func TestRedisLock_ExpiredLockIsNotStolen(t *testing.T) {
	// Подготовка
	mr, client := setupTestRedis(t)
	lock := NewRedisLock(client, time.Minute)
	ctx := context.Background()

	stale, err := lock.Acquire(ctx, models.JobKindNationalStats)
	require.NoError(t, err)
	// TTL истек, пока первая задача еще работала, и блокировку взяла вторая
	mr.FastForward(2 * time.Minute)
	current, err := lock.Acquire(ctx, models.JobKindNationalStats)
	require.NoError(t, err)
	require.NotEmpty(t, current)

	// Действие
	err = lock.Release(ctx, models.JobKindNationalStats, stale)

	// Проверки
	require.ErrorIs(t, err, ErrLockNotHeld)
	stored, err := mr.Get(LockKey(models.JobKindNationalStats))
	require.NoError(t, err)
	assert.Equal(t, current, stored)
}

func TestRedisQueue_EnqueueLPush(t *testing.T) {
	// Подготовка
	mr, client := setupTestRedis(t)
	queue := NewRedisQueue(client)
	msg := models.JobMessage{JobID: uuid.New(), Kind: models.JobKindNationalStats, LockToken: "owner-token"}

	// Действие
	err := queue.Enqueue(context.Background(), msg)

	// Проверки
	require.NoError(t, err)
	items, err := mr.List(QueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got models.JobMessage
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, msg.JobID, got.JobID)
	assert.Equal(t, "owner-token", got.LockToken)
}
