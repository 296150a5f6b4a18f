package models

// Input types carry the client-supplied fields for create and full-replace
// update operations. The binding tags are enforced twice: by Gin when the
// request body is bound, and again by the storage layer before any write,
// so direct storage callers (seeding, tests) get the same rules.

// CategoryInput is the create/update payload for a Category.
// IsActive is a pointer so an omitted field defaults to true.
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder" binding:"min=0"`
}

// SubcategoryInput is the create/update payload for a Subcategory.
type SubcategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder" binding:"min=0"`
}

// ProductInput is the create/update payload for a Product.
// Price must be a non-negative integer in centavos.
type ProductInput struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Price         int    `json:"price" binding:"min=0"`
	ImageURL      string `json:"imageUrl" binding:"required"`
	CategoryID    *uint  `json:"categoryId"`
	SubcategoryID *uint  `json:"subcategoryId"`
	Featured      bool   `json:"featured"`
}

// OrderInput is the checkout payload. Items become a permanent snapshot;
// TotalAmount is taken as submitted and not cross-checked against the item
// sum (known integrity gap, kept deliberately). Status defaults to pending
// when omitted.
type OrderInput struct {
	CustomerName    string      `json:"customerName" binding:"required"`
	CustomerEmail   string      `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string      `json:"customerPhone"`
	Items           []OrderItem `json:"items" binding:"required,min=1,dive"`
	TotalAmount     int         `json:"totalAmount" binding:"min=0"`
	Status          string      `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	PaymentMethod   string      `json:"paymentMethod" binding:"required,oneof=delivery transfer"`
	ShippingAddress string      `json:"shippingAddress" binding:"required"`
	Notes           string      `json:"notes"`
}

// UpsertUserInput is the insert-or-update payload for a User, keyed on ID.
type UpsertUserInput struct {
	ID              string `json:"id" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}
