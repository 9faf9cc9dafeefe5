package handlers

import (
	"errors"

	"tekbir/internal/catalog"
	"tekbir/internal/domain"
	applog "tekbir/internal/log"
	"tekbir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *catalog.Service
}

func catalogError(c *fiber.Ctx, err error) error {
	if errors.Is(err, catalog.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "catalog unavailable"})
	}
	applog.Error(c, "catalog.fail", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

// List serves the filtered storefront listing. Condition defaults to new,
// the way the catalog tab opens.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	cond, ok := validate.Condition(c.Query("condition"))
	if !ok {
		cond = domain.ConditionNew
	}
	q := catalog.Query{Condition: cond, Search: validate.Search(c.Query("q"))}
	if cat, ok := validate.Category(c.Query("category")); ok {
		q.Category = cat
	}
	products, err := h.Catalog.Filter(q)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// Featured serves the home-screen hits: the first non-sold products in sheet
// order.
func (h *CatalogHandler) Featured(c *fiber.Ctx) error {
	products, err := h.Catalog.Featured(4)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

// Detail resolves one product. Sold products still resolve here so an open
// detail page keeps working, read-only.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if _, err := h.Catalog.Products(); err != nil {
		return catalogError(c, err)
	}
	p, ok := h.Catalog.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

// Refresh re-fetches the price list (the pull-to-refresh path). A failure
// after a successful load keeps the old snapshot.
func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	if err := h.Catalog.Refresh(c.Context()); err != nil {
		applog.Error(c, "catalog.refresh.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not refresh catalog"})
	}
	applog.Info(c, "catalog.refresh", nil)
	return c.JSON(fiber.Map{"ok": true})
}
