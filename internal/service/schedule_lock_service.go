package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrScheduleLocked is returned when another request is generating slots
// for the same doctor.
var ErrScheduleLocked = errors.New("schedules for this doctor are being modified by another request")

const (
	RedisScheduleLockKeyPrefix = "schedule:lock:doctor:"

	defaultScheduleLockTTL = 30 * time.Second

	// Timeout for releasing a lock once the request context is gone
	lockReleaseTimeout = 5 * time.Second
)

// releaseLockScript deletes the lock only when it still holds our token, so
// a lock that expired and was taken by another request is left alone.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// ScheduleLocker serializes slot generation per doctor across instances.
type ScheduleLocker interface {
	Lock(ctx context.Context, doctorID uuid.UUID) (unlock func(), err error)
}

type redisScheduleLocker struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisScheduleLocker(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) ScheduleLocker {
	if ttl <= 0 {
		ttl = defaultScheduleLockTTL
	}
	return &redisScheduleLocker{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (l *redisScheduleLocker) Lock(ctx context.Context, doctorID uuid.UUID) (func(), error) {
	key := RedisScheduleLockKeyPrefix + doctorID.String()
	token := uuid.NewString()

	acquired, err := l.redisClient.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		l.log.Warnf("Failed to acquire schedule lock for doctor %s: %+v", doctorID, err)
		return nil, fmt.Errorf("acquire schedule lock for doctor %s: %w", doctorID, err)
	}
	if !acquired {
		return nil, ErrScheduleLocked
	}

	unlock := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
		defer cancel()
		if err := releaseLockScript.Run(releaseCtx, l.redisClient, []string{key}, token).Err(); err != nil {
			l.log.Warnf("Failed to release schedule lock for doctor %s (expires in %v): %+v", doctorID, l.ttl, err)
		}
	}
	return unlock, nil
}

type noopScheduleLocker struct{}

// NewNoopScheduleLocker is used when Redis is disabled. Concurrent requests
// for the same doctor are then not serialized.
func NewNoopScheduleLocker() ScheduleLocker {
	return noopScheduleLocker{}
}

func (noopScheduleLocker) Lock(context.Context, uuid.UUID) (func(), error) {
	return func() {}, nil
}
