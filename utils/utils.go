package utils

import (
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorResponse creates a standardized error response
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	return c.Status(status).JSON(response)
}

// InternalError reports an unexpected store failure and replies with a
// generic 500. The underlying error goes to the log and Sentry only, never
// into the response body.
func InternalError(c *fiber.Ctx, message string, err error) error {
	logrus.WithFields(logrus.Fields{
		"path":   c.Path(),
		"method": c.Method(),
		"error":  err,
	}).Error(message)

	if err != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("path", c.Path())
			scope.SetTag("method", c.Method())
			sentry.CaptureException(err)
		})
	}

	return ErrorResponse(c, fiber.StatusInternalServerError, message, nil)
}

// SuccessResponse creates a standardized success response
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// ParseUint safely parses a string to uint
func ParseUint(s string) uint {
	i, _ := strconv.ParseUint(s, 10, 32)
	return uint(i)
}
