package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys cho các danh sách hay đọc
const (
	CacheKeyRooms = "rooms:default"
	CacheKeyStats = "stats:summary"
)

// GetFromRedis lấy data từ Redis, cache miss trả về redis.Nil
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(cachedData), target)
}

// SetToRedis lưu dữ liệu vào Redis với TTL
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// DeleteFromRedis xóa cache theo key
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	return rdb.Del(ctx, keys...).Err()
}

// InvalidateListCaches xóa cache danh sách và thống kê sau mỗi lần ghi.
// rdb nil nghĩa là cache đang tắt.
func InvalidateListCaches(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = DeleteFromRedis(ctx, rdb, CacheKeyRooms, CacheKeyStats)
}
