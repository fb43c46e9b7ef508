package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/xid"
)

const RequestIDKey = "request_id"

// RequestID assigns every inbound request a unique ID and echoes it back in
// the X-Request-Id header so log lines can be correlated with responses.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		requestID := xid.New().String()

		c.Locals(RequestIDKey, requestID)
		c.Set("X-Request-Id", requestID)

		return c.Next()
	}
}

// GetRequestID returns the request ID assigned by the RequestID middleware.
func GetRequestID(c fiber.Ctx) string {
	requestID, ok := c.Locals(RequestIDKey).(string)
	if !ok {
		return ""
	}

	return requestID
}
