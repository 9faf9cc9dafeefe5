package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tekbir/internal/cart"
	"tekbir/internal/catalog"
	"tekbir/internal/checkout"
	"tekbir/internal/config"
	"tekbir/internal/http/handlers"
	applog "tekbir/internal/log"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	sheet := catalog.NewSheetClient(cfg.SheetURL, cfg.FetchTimeout)
	cat := catalog.NewService(sheet)
	sessions := cart.NewStore()
	intake := checkout.NewIntakeClient(cfg.OrderAPIURL, cfg.FetchTimeout)

	// Initial load. A failure is not fatal: the catalog stays in the
	// unavailable state until a refresh succeeds.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	if err := cat.Refresh(ctx); err != nil {
		log.Printf("[warn] initial catalog load failed: %v", err)
	}
	cancel()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, X-User-Name, X-User-Photo, X-Tg-Username",
	}))

	deps := handlers.NewDeps(cfg, cat, sessions, intake)

	api := app.Group("/api/v1")

	// Catalog
	api.Get("/products", deps.CatalogHandler.List)
	api.Get("/products/featured", deps.CatalogHandler.Featured)
	api.Get("/products/:id", deps.CatalogHandler.Detail)
	api.Post("/catalog/refresh", limiter.New(limiter.Config{Max: 10, Expiration: time.Minute}), deps.CatalogHandler.Refresh)

	// Cart & favorites
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Post("/cart/qty", deps.CartHandler.ChangeQty)
	api.Post("/cart/delete", deps.CartHandler.Remove)
	api.Get("/favorites", deps.CartHandler.Favorites)
	api.Post("/favorites/toggle", deps.CartHandler.ToggleFavorite)

	// Checkout
	api.Get("/checkout", deps.CheckoutHandler.Form)
	api.Put("/checkout", deps.CheckoutHandler.UpdateForm)
	api.Post("/orders", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.order.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.CheckoutHandler.Submit)

	// Profile & store info
	api.Get("/profile", deps.ProfileHandler.Profile)
	api.Get("/store", deps.ProfileHandler.Store)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
