package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionEntry 缓存里的会话快照,避免每个请求都打数据库
type SessionEntry struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionCache Redis 会话缓存层
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache 创建会话缓存
func NewSessionCache(addr, password string, db int, ttl time.Duration) (*SessionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SessionCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// GetSession 按令牌取会话快照
func (c *SessionCache) GetSession(ctx context.Context, token string) (*SessionEntry, bool, error) {
	key := fmt.Sprintf("session:%s", token)

	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil // 缓存未命中
	}
	if err != nil {
		return nil, false, err
	}

	var entry SessionEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, false, err
	}
	return &entry, true, nil
}

// SetSession 写入会话快照
func (c *SessionCache) SetSession(ctx context.Context, token string, entry *SessionEntry) error {
	key := fmt.Sprintf("session:%s", token)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// DeleteSession 删除会话快照,登出和过期时调用
func (c *SessionCache) DeleteSession(ctx context.Context, token string) error {
	key := fmt.Sprintf("session:%s", token)

	return c.client.Del(ctx, key).Err()
}

// Close 关闭 Redis 连接
func (c *SessionCache) Close() error {
	return c.client.Close()
}
