package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisClient 是 *redis.Client 中本套件會用到的子集，加上連線檢查用的 Ping。
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 建立底層 client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 連線到 Redis 並確認可用後回傳 Cache。
// 連線失敗時回傳錯誤，讓啟動流程提早中止。
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	opt := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	client := redisNewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
