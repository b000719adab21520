package cache

import (
	"fmt"
	"strings"

	"github.com/parcel-next/internal/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client
var redisPrefix string
var redisEnabled bool

// InitRedis 初始化 Redis 客户端；未启用时所有调用方走降级路径
func InitRedis(cfg *config.RedisConfig) error {
	redisPrefix = "pn"
	if cfg != nil {
		if prefix := strings.TrimSpace(cfg.Prefix); prefix != "" {
			redisPrefix = prefix
		}
	}
	// 前缀在未启用时也要可用，BuildKey 同样服务于降级路径的键名拼接
	if cfg == nil || !cfg.Enabled {
		redisEnabled = false
		return nil
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	redisEnabled = true
	return nil
}

// Enabled 判断 Redis 是否启用
func Enabled() bool {
	return redisEnabled && redisClient != nil
}

// Client 获取 Redis 客户端
func Client() *redis.Client {
	if !Enabled() {
		return nil
	}
	return redisClient
}

// BuildKey 拼接带前缀的键名
func BuildKey(key string) string {
	prefix := redisPrefix
	if prefix == "" {
		prefix = "pn"
	}
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return prefix
	}
	return fmt.Sprintf("%s:%s", prefix, trimmed)
}
