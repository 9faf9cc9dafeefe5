package catalog

import (
	"context"
	"strings"
	"sync"

	"tekbir/internal/domain"
)

// Fetcher is what Service needs from the sheet client.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// Service owns the current catalog snapshot. Every successful refresh
// replaces the snapshot wholesale; there is no incremental merge.
type Service struct {
	fetcher Fetcher

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
	gen      uint64 // newest refresh started; stale results are discarded
}

func NewService(f Fetcher) *Service {
	return &Service{fetcher: f}
}

// Refresh fetches the price list and swaps it in. If another Refresh was
// started after this one, the result is discarded so a slow fetch can never
// clobber a newer snapshot. A failed refresh keeps the previous snapshot;
// before the first successful load the service reports ErrUnavailable.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	products, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// superseded by a later refresh
		return nil
	}
	s.products = products
	s.loaded = true
	return nil
}

// Products returns the current snapshot, or ErrUnavailable before the first
// successful load.
func (s *Service) Products() ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, ErrUnavailable
	}
	return s.products, nil
}

// Get looks a product up by id. Sold products resolve too; filtering out of
// listings happens in Filter.
func (s *Service) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Query restricts a listing. Condition is required; category and search are
// optional.
type Query struct {
	Condition string
	Category  string
	Search    string
}

// Filter returns the products passing the query, in catalog order. Sold
// products never pass.
func (s *Service) Filter(q Query) ([]domain.Product, error) {
	all, err := s.Products()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(q.Search)
	out := []domain.Product{}
	for _, p := range all {
		if p.Sold() {
			continue
		}
		if p.Condition != q.Condition {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Featured returns the first n non-sold products, catalog order.
func (s *Service) Featured(n int) ([]domain.Product, error) {
	all, err := s.Products()
	if err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, p := range all {
		if p.Sold() {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out, nil
}
