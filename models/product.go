package models

// Product represents a catalog item. Price is stored in centavos (AOA),
// never floating point; display formatting divides by 100 client-side.
type Product struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Description   string `gorm:"type:text;not null" json:"description"`
	Price         int    `gorm:"not null" json:"price"`
	ImageURL      string `gorm:"not null" json:"imageUrl"`
	CategoryID    *uint  `gorm:"index" json:"categoryId"`    // nullable reference to categories
	SubcategoryID *uint  `gorm:"index" json:"subcategoryId"` // nullable reference to subcategories
	Featured      bool   `gorm:"not null;default:false" json:"featured"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
