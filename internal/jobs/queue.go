// Package jobs фоновые загрузки: очередь в Redis, блокировка по виду задачи, воркер и уведомления.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_observatory/internal/models"
)

const (
	QueueKey = "ingestion_jobs"
	// DeadLetterKey сообщения, которые воркер не смог разобрать
	DeadLetterKey = "ingestion_jobs:dead"
	lockPrefix    = "ingestion_lock:"
)

// ErrLockNotHeld блокировка истекла по TTL или принадлежит другой задаче
var ErrLockNotHeld = errors.New("lock is not held by this owner")

// RedisQueue очередь задач на списке Redis
type RedisQueue struct {
	redisClient *redis.Client
}

// NewRedisQueue создает новый RedisQueue
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{redisClient: client}
}

// Enqueue публикует задачу в очередь Redis
func (q *RedisQueue) Enqueue(ctx context.Context, msg models.JobMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal job message: %w", err)
	}

	// LPUSH в голову, воркер забирает BRPOP с хвоста
	if err := q.redisClient.LPush(ctx, QueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish job to Redis: %w", err)
	}
	return nil
}

// releaseScript удаляет ключ, только если в нем лежит токен владельца
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock блокировка задач одного вида через SET NX с TTL.
// TTL снимает блокировку, если воркер упал, не дойдя до Release.
// Значение ключа - токен владельца: Release чужой блокировки ничего не удаляет.
type RedisLock struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisLock(client *redis.Client, ttl time.Duration) *RedisLock {
	return &RedisLock{redisClient: client, ttl: ttl}
}

// LockKey ключ блокировки для вида задачи
func LockKey(kind string) string {
	return lockPrefix + kind
}

// Acquire возвращает токен владельца, пустой токен - блокировка занята
func (l *RedisLock) Acquire(ctx context.Context, kind string) (string, error) {
	token := uuid.NewString()
	ok, err := l.redisClient.SetNX(ctx, LockKey(kind), token, l.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire lock %s: %w", LockKey(kind), err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (l *RedisLock) Release(ctx context.Context, kind, token string) error {
	deleted, err := releaseScript.Run(ctx, l.redisClient, []string{LockKey(kind)}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", LockKey(kind), err)
	}
	if deleted == 0 {
		return fmt.Errorf("lock %s: %w", LockKey(kind), ErrLockNotHeld)
	}
	return nil
}
