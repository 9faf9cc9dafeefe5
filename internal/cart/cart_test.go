package cart_test

import (
	"sync"
	"testing"

	"tekbir/internal/cart"
	"tekbir/internal/domain"
)

func product(id string, price int) domain.Product {
	return domain.Product{ID: id, Name: "P " + id, Price: price, Capacity: "128GB"}
}

func checkInvariants(t *testing.T, s cart.State) {
	t.Helper()
	seen := map[string]bool{}
	for _, it := range s.Items {
		if seen[it.ID] {
			t.Fatalf("duplicate cart line for %s", it.ID)
		}
		seen[it.ID] = true
		if it.Qty < 1 {
			t.Fatalf("line %s has qty %d", it.ID, it.Qty)
		}
	}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	s := cart.NewState()
	p := product("p1", 1000)

	s = cart.Add(s, p)
	s = cart.Add(s, p)
	checkInvariants(t, s)

	if len(s.Items) != 1 || s.Items[0].Qty != 2 {
		t.Fatalf("want one line qty=2, got %+v", s.Items)
	}
	if s.Items[0].Name != "P p1" || s.Items[0].Price != 1000 || s.Items[0].Capacity != "128GB" {
		t.Fatalf("add must snapshot name/price/capacity: %+v", s.Items[0])
	}
}

func TestSnapshotSurvivesCatalogChange(t *testing.T) {
	s := cart.Add(cart.NewState(), product("p1", 1000))

	// a later catalog price change must not rewrite the stored snapshot
	s = cart.Add(s, product("p1", 9999))
	if s.Items[0].Price != 1000 {
		t.Fatalf("snapshot price must stay 1000, got %d", s.Items[0].Price)
	}
}

func TestChangeQty(t *testing.T) {
	s := cart.Add(cart.NewState(), product("p1", 1000))
	s = cart.Add(s, product("p1", 1000))

	// add twice, remove one unit: qty 1, not removal
	s = cart.ChangeQty(s, "p1", -1)
	checkInvariants(t, s)
	if len(s.Items) != 1 || s.Items[0].Qty != 1 {
		t.Fatalf("want qty=1, got %+v", s.Items)
	}

	// down to zero removes the line
	s = cart.ChangeQty(s, "p1", -1)
	if len(s.Items) != 0 {
		t.Fatalf("want empty cart, got %+v", s.Items)
	}

	// unknown id is a no-op
	s = cart.ChangeQty(s, "ghost", 5)
	if len(s.Items) != 0 {
		t.Fatalf("unknown id must be a no-op, got %+v", s.Items)
	}
}

func TestRemoveAndOrder(t *testing.T) {
	s := cart.NewState()
	for _, id := range []string{"a", "b", "c"} {
		s = cart.Add(s, product(id, 100))
	}
	s = cart.Remove(s, "b")
	checkInvariants(t, s)
	if len(s.Items) != 2 || s.Items[0].ID != "a" || s.Items[1].ID != "c" {
		t.Fatalf("remove must preserve insertion order, got %+v", s.Items)
	}
}

func TestToggleFavorite(t *testing.T) {
	s := cart.ToggleFavorite(cart.NewState(), "p1")
	if !s.Favorites["p1"] {
		t.Fatal("toggle must add")
	}
	s = cart.ToggleFavorite(s, "p1")
	if s.Favorites["p1"] {
		t.Fatal("second toggle must remove")
	}
}

func TestResetAfterOrderKeepsFavorites(t *testing.T) {
	s := cart.Add(cart.NewState(), product("p1", 1000))
	s = cart.ToggleFavorite(s, "p1")
	s.Form.Name = "Ivan"

	s = cart.ResetAfterOrder(s)
	if len(s.Items) != 0 {
		t.Fatal("cart must clear")
	}
	if s.Form != domain.DefaultCheckoutForm() {
		t.Fatalf("form must reset, got %+v", s.Form)
	}
	if !s.Favorites["p1"] {
		t.Fatal("favorites must survive")
	}
}

func TestTransitionsDoNotAliasInput(t *testing.T) {
	s0 := cart.Add(cart.NewState(), product("p1", 1000))
	_ = cart.ChangeQty(s0, "p1", 5)
	if s0.Items[0].Qty != 1 {
		t.Fatalf("input state mutated: %+v", s0.Items)
	}
}

func TestStoreConcurrentIncrements(t *testing.T) {
	st := cart.NewStore()
	p := product("p1", 1000)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Update("sid", func(s cart.State) cart.State { return cart.Add(s, p) })
		}()
	}
	wg.Wait()

	s := st.Get("sid")
	if len(s.Items) != 1 || s.Items[0].Qty != 100 {
		t.Fatalf("rapid adds must not lose updates, got %+v", s.Items)
	}
}
