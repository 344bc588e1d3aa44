package models

import (
	"time"

	"github.com/lib/pq"
)

// Restaurant is a catalog record. The catalog tables are hosted and
// read-only from this service's point of view.
type Restaurant struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(256);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"type:varchar(1024)" json:"image_url"`
	Rating      float64        `gorm:"not null;default:0" json:"rating"`
	CuisineTags pq.StringArray `gorm:"type:text[]" json:"cuisine_tags"`
	PriceLevel  int            `gorm:"not null;default:1" json:"price_level"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// MenuItem is a single dish on a restaurant's menu.
type MenuItem struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID string    `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Name         string    `gorm:"type:varchar(256);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	ImageURL     string    `gorm:"type:varchar(1024)" json:"image_url"`
	Category     string    `gorm:"type:varchar(128);not null" json:"category"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// MenuCategory groups menu items under their category heading, in the
// order the menu page renders them.
type MenuCategory struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

// GroupMenuByCategory splits an already category-then-name ordered item
// list into per-category sections.
func GroupMenuByCategory(items []MenuItem) []MenuCategory {
	var sections []MenuCategory
	for _, item := range items {
		if n := len(sections); n > 0 && sections[n-1].Category == item.Category {
			sections[n-1].Items = append(sections[n-1].Items, item)
			continue
		}
		sections = append(sections, MenuCategory{Category: item.Category, Items: []MenuItem{item}})
	}
	return sections
}
