package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tekbir/internal/domain"
)

// ErrUnavailable marks a failed catalog fetch, distinct from an empty
// catalog (a document without values is simply empty).
var ErrUnavailable = errors.New("catalog unavailable")

// SheetClient reads the published price list: a JSON document whose
// "values" field is an ordered range of string rows.
type SheetClient struct {
	URL    string
	Client *http.Client
}

func NewSheetClient(url string, timeout time.Duration) *SheetClient {
	return &SheetClient{URL: url, Client: &http.Client{Timeout: timeout}}
}

type sheetDoc struct {
	Values [][]string `json:"values"`
}

// Fetch downloads and normalizes the full product list.
func (sc *SheetClient) Fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sc.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := sc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: sheet returned %d", ErrUnavailable, resp.StatusCode)
	}
	var doc sheetDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Normalize(doc.Values), nil
}
