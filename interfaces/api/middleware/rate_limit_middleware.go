package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskflow/pkg/config"
	"taskflow/pkg/logger"
	"taskflow/pkg/utils"
)

// Counter is a fixed-window hit counter keyed by caller. The redis client
// satisfies it; MemoryCounter covers deployments without redis.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryCounter is an in-process Counter. Windows reset lazily on the next
// hit after expiry. Single-instance only; use redis when running more than
// one replica.
type MemoryCounter struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{windows: make(map[string]*memoryWindow)}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		m.windows[key] = w
	}

	w.count++
	return w.count, nil
}

// LoginRateLimiter throttles login attempts per client IP. A limit of zero
// disables it. Counter failures let the request through; losing the
// throttle is better than losing logins.
func LoginRateLimiter(cfg config.RateLimitConfig, counter Counter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.LoginLimit <= 0 {
			return c.Next()
		}

		key := "login_attempts:" + c.IP()
		count, err := counter.Incr(c.UserContext(), key, cfg.LoginWindow)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Rate limit counter unavailable", "error", err)
			return c.Next()
		}

		if count > int64(cfg.LoginLimit) {
			logger.WarnContext(c.UserContext(), "Login throttled",
				"ip", c.IP(),
				"attempts", count,
			)
			return utils.TooManyRequestsResponse(c, "too many login attempts, try again later")
		}

		return c.Next()
	}
}
