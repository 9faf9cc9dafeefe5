package handlers

import (
	"tekbir/internal/cart"
	"tekbir/internal/catalog"
	"tekbir/internal/checkout"
	"tekbir/internal/domain"
	applog "tekbir/internal/log"
	"tekbir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Sessions *cart.Store
	Catalog  *catalog.Service
}

type cartItemReq struct {
	ProductID string `json:"productId"`
	Delta     int    `json:"delta"`
}

func cartView(state cart.State, cat *catalog.Service) fiber.Map {
	lines, cartTotal := checkout.DetailCart(state.Items, cat.Get)
	fee := checkout.DeliveryFee(state.Form)
	return fiber.Map{
		"items":       lines,
		"cartTotal":   cartTotal,
		"deliveryFee": fee,
		"total":       cartTotal + fee,
	}
}

// View prices the cart against the live catalog and quotes delivery for the
// current draft.
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(cartView(h.Sessions.Get(sid), h.Catalog))
}

// Add puts one unit of a product in the cart. Sold products are refused.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, ok := h.Catalog.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if p.Sold() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "product already sold"})
	}
	state := h.Sessions.Update(sid, func(s cart.State) cart.State {
		return cart.Add(s, p)
	})
	applog.Audit(c, "cart.add", map[string]any{"product": id})
	return c.JSON(cartView(state, h.Catalog))
}

// ChangeQty applies a signed quantity delta; a line at or below zero is
// removed.
func (h *CartHandler) ChangeQty(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	delta := validate.Delta(req.Delta)
	state := h.Sessions.Update(sid, func(s cart.State) cart.State {
		return cart.ChangeQty(s, id, delta)
	})
	return c.JSON(cartView(state, h.Catalog))
}

// Remove drops a line outright.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	state := h.Sessions.Update(sid, func(s cart.State) cart.State {
		return cart.Remove(s, id)
	})
	return c.JSON(cartView(state, h.Catalog))
}

// ToggleFavorite flips a product's membership in the session's favorites.
func (h *CartHandler) ToggleFavorite(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	state := h.Sessions.Update(sid, func(s cart.State) cart.State {
		return cart.ToggleFavorite(s, id)
	})
	return c.JSON(fiber.Map{"favorite": state.Favorites[id]})
}

// Favorites resolves the favorite ids against the live catalog; ids whose
// product vanished are skipped.
func (h *CartHandler) Favorites(c *fiber.Ctx) error {
	sid := ensureSID(c)
	state := h.Sessions.Get(sid)
	all, err := h.Catalog.Products()
	if err != nil {
		return catalogError(c, err)
	}
	out := []domain.Product{}
	for _, p := range all {
		if state.Favorites[p.ID] {
			out = append(out, p)
		}
	}
	return c.JSON(fiber.Map{"products": out})
}
