package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
)

// Store holds the session's product snapshot. It is populated from a full
// fetch and replaced wholesale on refresh; reads never observe a partial
// update.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new snapshot after checking the snapshot invariants:
// ids unique, price and stock non-negative.
func (s *Store) Replace(products []models.Product) error {

	seen := make(map[string]struct{}, len(products))

	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate product id %q in snapshot", p.ID)
		}

		seen[p.ID] = struct{}{}

		if p.Price < 0 {
			return fmt.Errorf("product %q has negative price", p.ID)
		}

		if p.StockQuantity < 0 {
			return fmt.Errorf("product %q has negative stock quantity", p.ID)
		}
	}

	snapshot := make([]models.Product, len(products))
	copy(snapshot, products)

	s.mu.Lock()
	s.products = snapshot
	s.mu.Unlock()

	return nil
}

// All returns an order-preserving copy of the snapshot.
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)

	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}

func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}

	return models.Product{}, false
}

func (s *Store) ByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product

	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}

	return out
}

// SearchLocal matches the lowercased query as a substring of any text field.
// A blank query returns the full snapshot.
func (s *Store) SearchLocal(query string) []models.Product {

	if strings.TrimSpace(query) == "" {
		return s.All()
	}

	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product

	for _, p := range s.products {
		if productMatches(p, q) {
			out = append(out, p)
		}
	}

	return out
}

// MatchingVehicle returns the parts whose compatibility text mentions the
// decoded vehicle's make, model, or year.
func (s *Store) MatchingVehicle(info models.VehicleInfo) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := make([]string, 0, 3)

	for _, t := range []string{info.Make, info.Model, info.Year} {
		if t != "" {
			terms = append(terms, strings.ToLower(t))
		}
	}

	if len(terms) == 0 {
		return nil
	}

	var out []models.Product

	for _, p := range s.products {
		compat := strings.ToLower(p.CompatibleVehicles)

		for _, term := range terms {
			if strings.Contains(compat, term) {
				out = append(out, p)
				break
			}
		}
	}

	return out
}

func productMatches(p models.Product, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Description), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Brand), loweredQuery) ||
		strings.Contains(strings.ToLower(p.PartNumber), loweredQuery) ||
		strings.Contains(strings.ToLower(p.CompatibleVehicles), loweredQuery)
}
