package catalog_test

import (
	"reflect"
	"testing"

	"tekbir/internal/catalog"
	"tekbir/internal/domain"
)

func TestClassifyCategory(t *testing.T) {
	cases := []struct {
		raw, want string
	}{
		{"iPhone 13 Pro", domain.CategoryIPhone},
		{"Samsung Galaxy", domain.CategorySamsung},
		{"", domain.CategoryOther},
		{"Apple Watch SE", domain.CategoryWatch}, // compound key must beat "apple"
		{"apple", domain.CategoryIPhone},
		{"айфон", domain.CategoryIPhone},
		{"  Xiaomi ", domain.CategoryXiaomi},
		{"Redmi Note 12", domain.CategoryXiaomi},
		{"MacBook Air M2", domain.CategoryMacBook},
		{"air pods pro", domain.CategoryAirPods},
		{"PlayStation 5", domain.CategoryOther},
		{"iPad mini", domain.CategoryIPad},
	}
	for _, tc := range cases {
		if got := catalog.ClassifyCategory(tc.raw); got != tc.want {
			t.Errorf("ClassifyCategory(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestClassifyCondition(t *testing.T) {
	cases := []struct {
		raw, want string
	}{
		{"used", domain.ConditionUsed},
		{"Б/У", domain.ConditionUsed},
		{"бу, состояние отличное", domain.ConditionUsed},
		{"new", domain.ConditionNew},
		{"Новый", domain.ConditionNew},
		{"", domain.ConditionNew},
		{"garbage", domain.ConditionNew},
	}
	for _, tc := range cases {
		if got := catalog.ClassifyCondition(tc.raw); got != tc.want {
			t.Errorf("ClassifyCondition(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParsePhotos(t *testing.T) {
	got := catalog.ParsePhotos("http://a.jpg, http://b.jpg http://c.jpg")
	want := []string{"http://a.jpg", "http://b.jpg", "http://c.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got = catalog.ParsePhotos("not-a-url, http://ok.jpg")
	if !reflect.DeepEqual(got, []string{"http://ok.jpg"}) {
		t.Fatalf("non-urls must be dropped, got %v", got)
	}

	if got := catalog.ParsePhotos(""); len(got) != 0 {
		t.Fatalf("empty cell must yield no photos, got %v", got)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	rows := [][]string{
		{"", "", "abc"}, // short row: everything past price missing
	}
	ps := catalog.Normalize(rows)
	if len(ps) != 1 {
		t.Fatalf("want 1 product, got %d", len(ps))
	}
	p := ps[0]
	if p.ID != "row-0" {
		t.Errorf("synthetic id: got %q", p.ID)
	}
	if p.Name != "Без названия" {
		t.Errorf("placeholder name: got %q", p.Name)
	}
	if p.Price != 0 {
		t.Errorf("unparsable price must be 0, got %d", p.Price)
	}
	if p.Category != domain.CategoryOther {
		t.Errorf("empty category must be Other, got %q", p.Category)
	}
	if p.Condition != domain.ConditionNew {
		t.Errorf("empty condition must be new, got %q", p.Condition)
	}
	if p.Status != domain.StatusAvailable {
		t.Errorf("missing status must default to available, got %q", p.Status)
	}
}

func TestNormalizeFullRow(t *testing.T) {
	rows := [][]string{
		{"42", "iPhone 13", "64990", "apple", "Apple", "Б/У", "128GB",
			"http://a.jpg http://b.jpg", "как новый", "синий", "", "Резерв"},
		{"43", "Плохая цена", "-5", "", "", "", "", "", "", "", "", "Что-то странное"},
	}
	ps := catalog.Normalize(rows)

	p := ps[0]
	if p.ID != "42" || p.Price != 64990 || p.Category != domain.CategoryIPhone ||
		p.Condition != domain.ConditionUsed || p.Capacity != "128GB" ||
		p.Color != "синий" || p.Status != domain.StatusReserved {
		t.Fatalf("bad product: %+v", p)
	}
	if p.Photo != "http://a.jpg" || len(p.Photos) != 2 {
		t.Fatalf("bad photos: %+v", p)
	}

	// negative prices pass through unclamped; unknown status reads available
	if ps[1].Price != -5 {
		t.Errorf("negative price must pass through, got %d", ps[1].Price)
	}
	if ps[1].Status != domain.StatusAvailable {
		t.Errorf("unknown status must read available, got %q", ps[1].Status)
	}
}
