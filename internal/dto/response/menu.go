package response

import (
	"time"

	"github.com/nopasawa/Suki/internal/data/entity"
)

type MenuItemResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// MenuResponse groups items by category, the shape the menu page
// renders from.
type MenuResponse struct {
	Categories map[string][]MenuItemResponse `json:"categories"`
}

// TableMenuResponse is the guest menu page payload: the menu plus the
// table's remaining window.
type TableMenuResponse struct {
	TableID string                        `json:"table_id"`
	EndTime time.Time                     `json:"end_time"`
	Menu    map[string][]MenuItemResponse `json:"menu"`
}

func MenuToResponse(items []*entity.MenuItem) *MenuResponse {
	categories := make(map[string][]MenuItemResponse)
	for _, item := range items {
		categories[item.Category] = append(categories[item.Category], MenuItemResponse{
			Name:     item.Name,
			Category: item.Category,
		})
	}
	return &MenuResponse{Categories: categories}
}
