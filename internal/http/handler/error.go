package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"foodiefinds/internal/service"
)

// errorPayload is the body of every failed request: {"error": "<message>"}.
type errorPayload struct {
	Error string `json:"error"`
}

// messagePayload is the body of informational responses such as the
// banner and "not found" results.
type messagePayload struct {
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// respond renders the outcome of a catalog lookup:
// 200 {"<key>": [...]}, 404 {"message": notFound} when nothing matched,
// 500 {"error": "<raw message>"} when the query failed.
// Exactly one response is written per request.
func respond[T any](c *fiber.Ctx, key, notFound string, items []T, err error) error {
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(messagePayload{Message: notFound})
		}
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{key: items})
}

// ErrorHandler returns a Fiber global error handler for errors that escape
// the route handlers (unknown routes, wrong methods, panics turned into
// errors by middleware).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := err.Error()
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
			message = e.Message
		}
		return writeError(c, status, message)
	}
}
