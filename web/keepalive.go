// Package web exposes the keep-alive HTTP endpoint the hosting platform
// pings to keep the process alive.
package web

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// NewApp builds the keep-alive fiber app.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Aura is awake ☘️")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

// Start runs the keep-alive server in the background. Listen failures are
// logged, not fatal: the bot works without the keep-alive endpoint.
func Start(port int) {
	app := NewApp()
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			log.Printf("Keep-alive server stopped: %v", err)
		}
	}()
	log.Printf("Keep-alive server listening on :%d", port)
}
