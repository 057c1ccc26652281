package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// NewApp builds the Fiber app with the handler's routes mounted. Request
// strings are kept in session state, so the app runs in immutable mode.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "proconnect",
		Immutable:             true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	h.Register(app)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		log.Printf("request %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
