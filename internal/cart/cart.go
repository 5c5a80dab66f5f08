package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/pkg/notify"
)

// Storage is the durable key-value collaborator the cart persists through.
type Storage interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store owns the cart line items. Every mutation persists the resulting
// snapshot synchronously before returning, so a restart rehydrates identical
// state. There is at most one line item per product id and quantities are
// always >= 1; setting a quantity to zero or below removes the line item.
type Store struct {
	mu       sync.Mutex
	items    []models.CartItem
	storage  Storage
	key      string
	notifier notify.Notifier
}

// NewStore rehydrates the cart from storage. A missing snapshot starts an
// empty cart; a corrupted one is discarded and its entry cleared, never an
// initialization error.
func NewStore(ctx context.Context, storage Storage, key string, notifier notify.Notifier) (*Store, error) {

	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}

	s := &Store{storage: storage, key: key, notifier: notifier}

	raw, found, err := storage.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading cart snapshot: %w", err)
	}

	if !found {
		return s, nil
	}

	var items []models.CartItem

	if err := json.Unmarshal([]byte(raw), &items); err != nil || !validItems(items) {
		slog.Warn("Discarding corrupted cart snapshot", slog.String("key", key))

		if delErr := storage.Delete(ctx, key); delErr != nil {
			slog.Error("Failed to clear corrupted cart snapshot", slog.String("error", delErr.Error()))
		}

		return s, nil
	}

	s.items = items

	return s, nil
}

func validItems(items []models.CartItem) bool {

	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if item.Quantity < 1 || item.Product.ID == "" {
			return false
		}

		if _, dup := seen[item.Product.ID]; dup {
			return false
		}

		seen[item.Product.ID] = struct{}{}
	}

	return true
}

// Add inserts a line item for the product or increments an existing one.
// Quantities below 1 count as 1.
func (s *Store) Add(ctx context.Context, product models.Product, quantity int) error {

	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyItems()

	merged := false

	for i := range next {
		if next[i].Product.ID == product.ID {
			next[i].Quantity += quantity
			merged = true

			break
		}
	}

	if !merged {
		next = append(next, models.CartItem{Product: product, Quantity: quantity})
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.items = next
	s.notifier.Notify(ctx, "Added to cart", fmt.Sprintf("%s x%d", product.Name, quantity), notify.SeveritySuccess)

	return nil
}

// Remove deletes the line item if present. Removing an absent product is a
// no-op, not an error.
func (s *Store) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID string) error {

	next := make([]models.CartItem, 0, len(s.items))

	var removed *models.CartItem

	for _, item := range s.items {
		if item.Product.ID == productID {
			removed = &item
			continue
		}

		next = append(next, item)
	}

	if removed == nil {
		return nil
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.items = next
	s.notifier.Notify(ctx, "Removed from cart", removed.Product.Name, notify.SeverityInfo)

	return nil
}

// UpdateQuantity sets the absolute quantity for a line item. Zero or below
// behaves exactly like Remove. An unknown product id is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, productID)
	}

	next := s.copyItems()

	for i := range next {
		if next[i].Product.ID != productID {
			continue
		}

		next[i].Quantity = quantity

		if err := s.persist(ctx, next); err != nil {
			return err
		}

		s.items = next
		s.notifier.Notify(ctx, "Cart updated", fmt.Sprintf("%s x%d", next[i].Product.Name, quantity), notify.SeverityInfo)

		return nil
	}

	return nil
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []models.CartItem{}

	if err := s.persist(ctx, empty); err != nil {
		return err
	}

	s.items = nil
	s.notifier.Notify(ctx, "Cart cleared", "All items removed", notify.SeverityInfo)

	return nil
}

// Items returns the line items in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyItems()
}

// Total sums price * quantity over line items, always using the base price.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64

	for _, item := range s.items {
		total += item.LineTotal()
	}

	return total
}

// ItemCount sums quantities, not distinct line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int

	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

// Snapshot returns the cart with its derived totals in one locked read.
func (s *Store) Snapshot() models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.CartResponse{Items: s.copyItems()}

	for _, item := range s.items {
		resp.Total += item.LineTotal()
		resp.ItemCount += item.Quantity
	}

	if resp.Items == nil {
		resp.Items = []models.CartItem{}
	}

	return resp
}

func (s *Store) copyItems() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)

	return out
}

func (s *Store) persist(ctx context.Context, items []models.CartItem) error {

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling cart snapshot: %w", err)
	}

	if err := s.storage.Write(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("persisting cart snapshot: %w", err)
	}

	return nil
}
