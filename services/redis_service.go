package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetFromRedis đọc và parse JSON từ cache. Key không tồn tại thì
// target giữ nguyên, không trả lỗi.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cached, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(cached), target)
}

// SetToRedis serialize value thành JSON rồi ghi vào cache với TTL
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, data, ttl).Err()
}

// DeleteFromRedis xóa một key khỏi cache
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}
