package checkout

import (
	"tekbir/internal/domain"
)

// Flat courier surcharges in rubles; pickup is free. The fee depends only on
// the checkout form, never on cart contents.
const (
	feeCourierMoscow = 1000
	feeCourierOther  = 500
)

func DeliveryFee(f domain.CheckoutForm) int {
	if f.DeliveryMethod == domain.DeliveryStore {
		return 0
	}
	if f.DeliveryType == domain.DeliveryZoneMoscow {
		return feeCourierMoscow
	}
	return feeCourierOther
}

// Lookup resolves a product id against the current catalog.
type Lookup func(id string) (domain.Product, bool)

// DetailCart prices each line against the live catalog: the current product
// price is authoritative, the add-time snapshot is display fallback only. A
// line whose product vanished from the catalog prices at zero.
func DetailCart(items []domain.CartItem, lookup Lookup) ([]domain.OrderLine, int) {
	lines := make([]domain.OrderLine, 0, len(items))
	total := 0
	for _, it := range items {
		line := domain.OrderLine{CartItem: it}
		if p, ok := lookup(it.ID); ok {
			cp := p
			line.Product = &cp
			line.LineTotal = p.Price * it.Qty
		}
		total += line.LineTotal
		lines = append(lines, line)
	}
	return lines, total
}

// BuildOrder assembles the outbound payload. Phone must already be in
// canonical form.
func BuildOrder(f domain.CheckoutForm, phone string, lines []domain.OrderLine, cartTotal int, username string) domain.Order {
	return domain.Order{
		Name:           f.Name,
		Phone:          phone,
		ContactMethod:  f.ContactMethod,
		DeliveryMethod: f.DeliveryMethod,
		DeliveryType:   f.DeliveryType,
		Address:        f.Address,
		Comment:        f.Comment,
		Items:          lines,
		Total:          cartTotal + DeliveryFee(f),
		TGUsername:     username,
	}
}
