package handlers

import (
	"context"
	"time"

	"tekbir/internal/cart"
	"tekbir/internal/catalog"
	"tekbir/internal/checkout"
	"tekbir/internal/domain"
	applog "tekbir/internal/log"
	"tekbir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

const phoneHint = "Введите номер вида 89951128230 (11 цифр, начинается с 7/8/+7)"

type CheckoutHandler struct {
	Sessions *cart.Store
	Catalog  *catalog.Service
	Intake   *checkout.IntakeClient
}

func formView(f domain.CheckoutForm) fiber.Map {
	_, phoneOK := validate.Phone(f.Phone)
	v := fiber.Map{
		"form":        f,
		"deliveryFee": checkout.DeliveryFee(f),
		"phoneValid":  phoneOK,
	}
	if !phoneOK && f.Phone != "" {
		v["phoneError"] = phoneHint
	}
	return v
}

// Form returns the session's checkout draft with live phone validation
// feedback, the way the checkout screen shows it on every keystroke.
func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(formView(h.Sessions.Get(sid).Form))
}

// UpdateForm replaces the draft. Free text is taken as-is; the enum fields
// must hold allowed values.
func (h *CheckoutHandler) UpdateForm(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var f domain.CheckoutForm
	if err := c.BodyParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if !validate.Form(f) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid contact or delivery option"})
	}
	state := h.Sessions.Update(sid, func(s cart.State) cart.State {
		return cart.SetForm(s, f)
	})
	return c.JSON(formView(state.Form))
}

// Submit validates the draft, prices the cart against the live catalog and
// forwards the order. On intake failure the cart and draft stay untouched so
// the user can retry; on success the cart clears, the draft resets and the
// catalog is re-fetched.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)
	state := h.Sessions.Get(sid)

	phone, ok := validate.Phone(state.Form.Phone)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": phoneHint})
	}
	if !validate.Form(state.Form) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid contact or delivery option"})
	}
	if len(state.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
	}

	lines, cartTotal := checkout.DetailCart(state.Items, h.Catalog.Get)
	order := checkout.BuildOrder(state.Form, phone, lines, cartTotal, c.Get("X-Tg-Username"))

	if err := h.Intake.Submit(c.Context(), order); err != nil {
		applog.Error(c, "order.submit.fail", err, map[string]any{"total": order.Total})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not submit order"})
	}

	h.Sessions.Update(sid, cart.ResetAfterOrder)
	applog.Audit(c, "order.submit", map[string]any{"total": order.Total, "items": len(order.Items)})

	// refresh the price list so just-sold units drop out of listings
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = h.Catalog.Refresh(ctx)
	}()

	return c.JSON(fiber.Map{"ok": true, "total": order.Total})
}
