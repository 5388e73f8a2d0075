package web

import (
	"time"

	"tweetweb/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const requestIDKey = "requestid"

// RequestIDConfig returns the configuration for Fiber's requestid middleware.
// An incoming X-Request-ID is kept, otherwise a UUID is generated.
func RequestIDConfig() requestid.Config {
	return requestid.Config{
		Header:     fiber.HeaderXRequestID,
		ContextKey: requestIDKey,
	}
}

// RequestIDToContextMiddleware copies Fiber's request id into the user
// context so pkg/log picks it up. Must run after requestid.New().
func RequestIDToContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(requestIDKey).(string); ok && id != "" {
			c.SetUserContext(log.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

// RequestLoggerMiddleware logs one structured line per request, at WARN for
// 4xx and ERROR for 5xx. Must run after RequestIDToContextMiddleware.
func RequestLoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		ctx := c.UserContext()
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.IP(),
			"user_agent", c.Get(fiber.HeaderUserAgent),
		}
		if err != nil {
			fields = append(fields, "error", err.Error())
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.GlobalErrorCtx(ctx, "request completed", fields...)
		case status >= fiber.StatusBadRequest:
			log.GlobalWarnCtx(ctx, "request completed", fields...)
		default:
			log.GlobalInfoCtx(ctx, "request completed", fields...)
		}

		return err
	}
}
