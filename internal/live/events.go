package live

import "time"

const (
	EventItemCreated     = "item.created"
	EventItemUpdated     = "item.updated"
	EventItemDeleted     = "item.deleted"
	EventCategoryAdded   = "category.added"
	EventCategoryDeleted = "category.deleted"
)

// MenuEvent tells connected menu displays that the catalog changed.
type MenuEvent struct {
	Type     string    `json:"type"`
	ItemID   string    `json:"item_id,omitempty"`
	Category string    `json:"category,omitempty"`
	At       time.Time `json:"at"`
}
