package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/blvshy/doodleart-backend/pkg/enums"
)

// CustomDetails captures the buyer's selections for a custom doodle line.
type CustomDetails struct {
	Style       enums.CustomStyle    `json:"style"`
	Size        enums.CustomSize     `json:"size"`
	Deadline    enums.CustomDeadline `json:"deadline"`
	Description string               `json:"description"`
}

// Item is what gets added to a cart: either a catalog artwork or a
// synthesized custom order. Lines are keyed by Key; adding an item whose
// key is already present increments that line's quantity. Custom items
// carry a fresh uuid-based key, so two custom orders never merge.
type Item struct {
	Key      string         `json:"key"`
	ItemID   int            `json:"item_id,omitempty"`
	Title    string         `json:"title"`
	Price    int            `json:"price"`
	Image    string         `json:"image"`
	Category enums.Category `json:"category"`
	IsCustom bool           `json:"is_custom,omitempty"`
	Custom   *CustomDetails `json:"custom_details,omitempty"`
}

// CatalogLineKey namespaces catalog ids away from custom order keys.
func CatalogLineKey(id int) string {
	return fmt.Sprintf("item:%d", id)
}

// Line is one cart entry: an item plus its quantity. Quantity is ≥ 1
// for as long as the line exists.
type Line struct {
	Item
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Subtotal returns price × quantity for the line.
func (l Line) Subtotal() int {
	return l.Price * l.Quantity
}

// Snapshot is a point-in-time copy of the cart, safe to hold across
// later mutations.
type Snapshot struct {
	Lines         []Line `json:"lines"`
	TotalPrice    int    `json:"total_price"`
	TotalQuantity int    `json:"total_quantity"`
}

// Store is the single source of truth for one buyer's purchase intent.
// It is handed to every surface that reads or mutates the cart;
// observers registered via Subscribe see every mutation.
type Store struct {
	mu      sync.Mutex
	lines   []*Line
	index   map[string]*Line
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{
		index: make(map[string]*Line),
		subs:  make(map[int]func(Snapshot)),
	}
}

// Add appends a new line with quantity 1, or increments the quantity of
// the existing line with the same key. It always succeeds.
func (s *Store) Add(item Item) Line {
	s.mu.Lock()
	if line, ok := s.index[item.Key]; ok {
		line.Quantity++
		out := *line
		s.unlockAndNotify()
		return out
	}
	line := &Line{Item: item, Quantity: 1, AddedAt: time.Now().UTC()}
	s.lines = append(s.lines, line)
	s.index[item.Key] = line
	out := *line
	s.unlockAndNotify()
	return out
}

// UpdateQuantity sets the quantity of the keyed line, removing it when
// quantity drops to zero or below. It reports whether the key was present.
func (s *Store) UpdateQuantity(key string, quantity int) bool {
	s.mu.Lock()
	line, ok := s.index[key]
	if !ok {
		s.mu.Unlock()
		return false
	}
	if quantity <= 0 {
		s.removeLocked(key)
	} else {
		line.Quantity = quantity
	}
	s.unlockAndNotify()
	return true
}

// Remove drops the keyed line and reports whether it was present.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	if _, ok := s.index[key]; !ok {
		s.mu.Unlock()
		return false
	}
	s.removeLocked(key)
	s.unlockAndNotify()
	return true
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = s.lines[:0]
	s.index = make(map[string]*Line)
	s.unlockAndNotify()
}

// Snapshot copies the current lines and totals in insertion order.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalPrice returns Σ(price × quantity) over all lines; 0 when empty.
func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// Subscribe registers an observer called after every mutation with the
// resulting snapshot. The returned function unsubscribes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) removeLocked(key string) {
	delete(s.index, key)
	for i, line := range s.lines {
		if line.Key == key {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Lines: make([]Line, 0, len(s.lines))}
	for _, line := range s.lines {
		snap.Lines = append(snap.Lines, *line)
		snap.TotalPrice += line.Subtotal()
		snap.TotalQuantity += line.Quantity
	}
	return snap
}

// unlockAndNotify snapshots and releases the lock before invoking
// observers, so an observer may call back into the store.
func (s *Store) unlockAndNotify() {
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
