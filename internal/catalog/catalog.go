package catalog

import (
	"strings"

	"github.com/blvshy/doodleart-backend/pkg/enums"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
)

// Item is a purchasable artwork. The catalog is fixed at process start
// and never mutated.
type Item struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Price       int            `json:"price"`
	Image       string         `json:"image"`
	Category    enums.Category `json:"category"`
	Description string         `json:"description"`
}

// ListFilters describe the supported filter knobs for the gallery endpoint.
type ListFilters struct {
	Category *enums.Category
	Query    string
}

// Service exposes read-only catalog lookups.
type Service interface {
	List(filters ListFilters) []Item
	GetByID(id int) (Item, error)
}

type service struct {
	items []Item
}

// NewService builds a catalog service over the fixed artwork list.
func NewService() Service {
	return &service{items: artworks}
}

func (s *service) List(filters ListFilters) []Item {
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if filters.Category != nil && item.Category != *filters.Category {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s *service) GetByID(id int) (Item, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, pkgerrors.New(pkgerrors.CodeNotFound, "artwork not found")
}

func matchesQuery(item Item, query string) bool {
	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Description), query)
}
