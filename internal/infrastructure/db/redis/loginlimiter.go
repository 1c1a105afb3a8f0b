package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed-window counter: first INCR in a window sets the expiry, and the
// request is allowed while the count stays within the limit.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// LoginLimiter throttles credential routes using a Redis-scripted fixed
// window. It fails open: when Redis is unreachable the request proceeds, so a
// cache outage never locks out logins.
type LoginLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	if client == nil {
		return nil
	}
	return &LoginLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

// Allow reports whether the request identified by key may proceed within the
// current window.
func (l *LoginLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}

	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
