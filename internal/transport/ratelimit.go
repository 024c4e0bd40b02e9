package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sethvargo/go-limiter"
	"github.com/sethvargo/go-limiter/memorystore"
)

// newLimiter returns nil when limiting is disabled.
func newLimiter(tokens int, interval time.Duration) (limiter.Store, error) {
	if tokens <= 0 {
		return nil, nil
	}
	return memorystore.New(&memorystore.Config{
		Tokens:   uint64(tokens),
		Interval: interval,
	})
}

// RateLimit throttles the route per client IP.
func (s *HTTPServer) RateLimit(c *fiber.Ctx) error {
	if s.limiter == nil {
		return c.Next()
	}

	limit, remaining, reset, ok, err := s.limiter.Take(c.UserContext(), c.IP())
	if err != nil {
		return err
	}

	resetTime := time.Unix(0, int64(reset)).UTC()
	c.Set("X-RateLimit-Limit", strconv.FormatUint(limit, 10))
	c.Set("X-RateLimit-Remaining", strconv.FormatUint(remaining, 10))
	c.Set("X-RateLimit-Reset", resetTime.Format(time.RFC1123))

	if !ok {
		c.Set(fiber.HeaderRetryAfter, resetTime.Format(time.RFC1123))
		return fiber.NewError(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
	}
	return c.Next()
}
