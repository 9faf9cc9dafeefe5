package handlers

import (
	"tekbir/internal/config"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Cfg config.Config
}

// Profile echoes the identity context the mini-app platform supplies in
// headers. Everything degrades gracefully: no header means the default
// display name and no avatar/username.
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	name := c.Get("X-User-Name")
	if name == "" {
		name = "Пользователь"
	}
	return c.JSON(fiber.Map{
		"name":     name,
		"photo":    c.Get("X-User-Photo"),
		"username": c.Get("X-Tg-Username"),
	})
}

// Store serves the physical store card shown on the profile screen.
func (h *ProfileHandler) Store(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": h.Cfg.StoreTitle,
		"time":  h.Cfg.StoreHours,
		"phone": h.Cfg.StorePhone,
	})
}
