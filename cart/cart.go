package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/khushi161014/studio-treta/models"
)

// storageKey is the fixed namespace under which the serialized cart lives.
const storageKey = "studio-treta.cart"

// Item is a line in the shopping bag. Name, category, image and price are
// copied from the product at add time, so later catalog edits do not
// retroactively change what is already in the bag.
type Item struct {
	ProductID  uint   `json:"productId"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	ImageURL   string `json:"imageUrl"`
	PriceCents int    `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Store holds the shopping bag for one session. Items keep insertion order.
// Every mutation persists the full snapshot to the injected Storage
// best-effort; a persistence failure is logged and never surfaced.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
}

// NewStore creates a Store backed by the given storage, reloading whatever
// snapshot a previous session left behind.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}

	if storage == nil {
		return s
	}
	data, ok, err := storage.Get(storageKey)
	if err != nil {
		log.Printf("❌ Failed to load saved cart: %v", err)
		return s
	}
	if ok {
		if err := json.Unmarshal(data, &s.items); err != nil {
			log.Printf("❌ Saved cart is unreadable, starting empty: %v", err)
			s.items = nil
		}
	}
	return s
}

// AddItem puts one unit of the product into the bag. If the product is
// already present its quantity goes up by one; otherwise a new line is
// appended with a snapshot of the product's current name and price.
func (s *Store) AddItem(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, Item{
		ProductID:  product.ID,
		Name:       product.Name,
		Category:   product.Category,
		ImageURL:   product.ImageURL,
		PriceCents: product.PriceCents,
		Quantity:   1,
	})
	s.persist()
}

// RemoveItem deletes the line for productID. Removing an absent product is
// a no-op, not an error.
func (s *Store) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the quantity for productID. Quantities below 1 are
// rejected (the store never auto-removes; the UI disables decrement at 1).
// Unknown products are a no-op.
func (s *Store) UpdateQuantity(productID uint, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Total returns the sum of price*quantity over all lines, recomputed on
// every call.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.PriceCents * item.Quantity
	}
	return total
}

// Clear empties the bag unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a copy of the current lines in insertion order. Callers
// taking a checkout snapshot use this so in-flight submissions are not
// affected by later mutations.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// persist writes the full snapshot. Callers hold s.mu.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("❌ Failed to serialize cart: %v", err)
		return
	}
	if err := s.storage.Set(storageKey, data); err != nil {
		log.Printf("❌ Failed to save cart: %v", err)
	}
}
