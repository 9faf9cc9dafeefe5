package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tekbir/internal/catalog"
)

func sheetServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestSheetFetch(t *testing.T) {
	srv := sheetServer(t, 200, `{"values":[["1","iPhone 13","64990","apple","Apple","new","128GB","http://a.jpg","","синий","","Свободен"]]}`)
	defer srv.Close()

	sc := catalog.NewSheetClient(srv.URL, 5*time.Second)
	ps, err := sc.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 1 || ps[0].Name != "iPhone 13" || ps[0].Price != 64990 {
		t.Fatalf("got %+v", ps)
	}
}

func TestSheetFetchNoValuesIsEmpty(t *testing.T) {
	srv := sheetServer(t, 200, `{"range":"Лист1!A2:O"}`)
	defer srv.Close()

	sc := catalog.NewSheetClient(srv.URL, 5*time.Second)
	ps, err := sc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("a document without values is an empty catalog, not an error: %v", err)
	}
	if len(ps) != 0 {
		t.Fatalf("want empty, got %v", ps)
	}
}

func TestSheetFetchFailures(t *testing.T) {
	srv := sheetServer(t, 500, `boom`)
	defer srv.Close()

	sc := catalog.NewSheetClient(srv.URL, 5*time.Second)
	if _, err := sc.Fetch(context.Background()); !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("non-2xx must be ErrUnavailable, got %v", err)
	}

	bad := sheetServer(t, 200, `{not json`)
	defer bad.Close()
	sc = catalog.NewSheetClient(bad.URL, 5*time.Second)
	if _, err := sc.Fetch(context.Background()); !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("parse failure must be ErrUnavailable, got %v", err)
	}

	sc = catalog.NewSheetClient("http://127.0.0.1:1", time.Second)
	if _, err := sc.Fetch(context.Background()); !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("transport failure must be ErrUnavailable, got %v", err)
	}
}
