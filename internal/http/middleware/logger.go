package middleware

import (
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/logging"
)

// Logger writes one "http_request" record per request. latency is in milliseconds;
// user_id is present once RequireAuth has accepted the caller.
func Logger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		attrs := []any{
			"request_id", GetRequestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds()) / 1000,
		}
		if uid := UserID(c); uid != "" {
			attrs = append(attrs, "user_id", uid)
		}
		log.Info("http_request", attrs...)
		return err
	}
}

// LoggerWithWriter is Logger over a JSON logger writing to w, timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logging.New(w, loc, "info"))
}
