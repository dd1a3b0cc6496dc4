package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// A nil client disables caching: reads miss, writes and deletes are no-ops.

func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, dest interface{}) error {
	if rdb == nil {
		return redis.Nil
	}
	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if rdb == nil || len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

func roomCacheKey(roomID uint) string {
	return fmt.Sprintf("rooms:%d", roomID)
}

func reviewsCacheKey(roomID uint) string {
	return fmt.Sprintf("reviews:room:%d", roomID)
}

func bookedDatesCacheKey(roomID uint) string {
	return fmt.Sprintf("bookings:booked-dates:room:%d", roomID)
}
