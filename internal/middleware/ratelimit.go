package middleware

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/domain"
	"mbti-social/internal/service/ratelimit"
)

// RateLimit counts requests per client IP and scope. A failing store lets the
// request through.
func RateLimit(limiter ratelimit.Limiter, scope string, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := GetClientIP(c)
		res, err := limiter.Allow(c.UserContext(), scope+":"+ip)
		if err != nil {
			log.WithFields(logrus.Fields{"scope": scope, "ip": ip}).WithError(err).Warn("rate limiter unavailable")
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			seconds := int(math.Ceil(res.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
			return domain.ErrRateLimited
		}
		return c.Next()
	}
}
