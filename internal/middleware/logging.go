package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/pkg/logger"
)

func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := logger.GenerateRequestID()
		c.Locals("requestID", requestID)

		err := c.Next()

		statusCode := c.Response().StatusCode()
		details := map[string]interface{}{
			"method":       c.Method(),
			"path":         c.Path(),
			"status_code":  statusCode,
			"latency_ms":   time.Since(start).Milliseconds(),
			"ip":           c.IP(),
			"request_body": logger.GetRequestBodySummary(c),
			"request_id":   requestID,
		}

		userID := logger.GetUserIDFromContext(c)
		switch {
		case userID != nil && statusCode >= 400:
			logger.ErrorWithUser(*userID, "http_request", err, details)
		case userID != nil:
			logger.InfoWithUser(*userID, "http_request", details)
		case statusCode >= 400:
			logger.Error("http_request", err, details)
		default:
			logger.Info("http_request", details)
		}

		return err
	}
}

// SecurityLogger records auth failures separately so rejected requests are
// easy to grep out of the access log.
func SecurityLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		statusCode := c.Response().StatusCode()
		if statusCode != fiber.StatusUnauthorized && statusCode != fiber.StatusForbidden {
			return err
		}

		details := map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"status_code": statusCode,
			"ip":          c.IP(),
		}

		if userID := logger.GetUserIDFromContext(c); userID != nil {
			logger.WarnWithUser(*userID, "security_denied", details)
		} else {
			logger.Warn("security_denied", details)
		}

		return err
	}
}
