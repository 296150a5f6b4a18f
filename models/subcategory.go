package models

import (
	"time"
)

// Subcategory represents a second-level catalog entry owned by a Category.
// Deleting a Category does not cascade to its subcategories.
type Subcategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  uint      `gorm:"not null;index" json:"categoryId"` // foreign key to categories table
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder   int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the Subcategory model
func (Subcategory) TableName() string {
	return "subcategories"
}
