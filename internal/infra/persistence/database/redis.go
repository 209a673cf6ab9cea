package database

import (
	"context"
	"log"
	"strconv"

	"github.com/codepulse-cc/codepulse-app/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 根据配置创建 Redis 客户端。
// Redis 未配置或连接失败时返回 nil 而不是 error，由上层降级到内存缓存。
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	redisAddr := cfg.GetString(config.KeyRedisAddr)
	redisPassword := cfg.GetString(config.KeyRedisPassword)
	redisDBStr := cfg.GetString(config.KeyRedisDB)

	if redisAddr == "" {
		log.Println("⚠️  Redis 地址未配置，将使用内存缓存")
		return nil, nil
	}

	var redisDB int
	if redisDBStr != "" {
		var err error
		redisDB, err = strconv.Atoi(redisDBStr)
		if err != nil {
			log.Printf("⚠️  无效的 Redis.DB 值 '%s': %v，将使用内存缓存", redisDBStr, err)
			return nil, nil
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis 连接失败: %v，将使用内存缓存", err)
		return nil, nil
	}

	log.Println("✅ Redis 连接成功！")
	return rdb, nil
}
