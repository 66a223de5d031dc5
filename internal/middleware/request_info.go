package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const ClientIPContextKey = "client_ip"

// RequestInfo resolves the caller's address once per request. The first
// X-Forwarded-For hop wins over the socket address.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(ClientIPContextKey, resolveClientIP(c))
		return c.Next()
	}
}

func resolveClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}

func GetClientIP(c *fiber.Ctx) string {
	if ip, ok := c.Locals(ClientIPContextKey).(string); ok {
		return ip
	}
	return resolveClientIP(c)
}
