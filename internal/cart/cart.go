package cart

import "tekbir/internal/domain"

// State is a session's cart, favorites and checkout draft. Transitions are
// pure: each returns a fresh State and never aliases the input's slices, so
// the Store can apply them atomically under its lock.
type State struct {
	Items     []domain.CartItem
	Favorites map[string]bool
	Form      domain.CheckoutForm
}

func NewState() State {
	return State{
		Items:     []domain.CartItem{},
		Favorites: map[string]bool{},
		Form:      domain.DefaultCheckoutForm(),
	}
}

func (s State) clone() State {
	out := s
	out.Items = make([]domain.CartItem, len(s.Items))
	copy(out.Items, s.Items)
	out.Favorites = make(map[string]bool, len(s.Favorites))
	for id := range s.Favorites {
		out.Favorites[id] = true
	}
	return out
}

// Add puts one unit of the product in the cart. An existing line gains a
// unit; a new line snapshots name/price/capacity as of now. Line order is
// insertion order.
func Add(s State, p domain.Product) State {
	out := s.clone()
	for i := range out.Items {
		if out.Items[i].ID == p.ID {
			out.Items[i].Qty++
			return out
		}
	}
	out.Items = append(out.Items, domain.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Capacity: p.Capacity,
		Qty:      1,
	})
	return out
}

// ChangeQty adds delta to a line's quantity; at or below zero the line is
// dropped. Unknown ids are a no-op.
func ChangeQty(s State, id string, delta int) State {
	out := s.clone()
	items := out.Items[:0]
	for _, it := range out.Items {
		if it.ID == id {
			it.Qty += delta
			if it.Qty <= 0 {
				continue
			}
		}
		items = append(items, it)
	}
	out.Items = items
	return out
}

// Remove drops the line outright if present.
func Remove(s State, id string) State {
	out := s.clone()
	items := out.Items[:0]
	for _, it := range out.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	out.Items = items
	return out
}

// ToggleFavorite flips membership for id.
func ToggleFavorite(s State, id string) State {
	out := s.clone()
	if out.Favorites[id] {
		delete(out.Favorites, id)
	} else {
		out.Favorites[id] = true
	}
	return out
}

// SetForm replaces the checkout draft.
func SetForm(s State, f domain.CheckoutForm) State {
	out := s.clone()
	out.Form = f
	return out
}

// ResetAfterOrder clears the cart and restores the default draft, as happens
// after a successful submission. Favorites survive.
func ResetAfterOrder(s State) State {
	out := s.clone()
	out.Items = []domain.CartItem{}
	out.Form = domain.DefaultCheckoutForm()
	return out
}
