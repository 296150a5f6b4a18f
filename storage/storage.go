// Package storage is the single source of truth for reading and writing
// catalog and order data. The Storage interface hides the backing engine;
// MemoryStorage and GormStorage (SQLite, PostgreSQL, MySQL) satisfy the
// same contract and are selected at startup by configuration.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/lojatec/lojatec-api/models"
)

// ErrNotFound is returned when an operation targets a nonexistent id.
// Handlers translate it to 404.
var ErrNotFound = errors.New("record not found")

// ErrInvalidInput wraps validation failures on create/update.
// Handlers translate it to 400.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func errInvalidStatus(s string) error {
	return fmt.Errorf("unknown order status %q", s)
}

// CategoryWithSubcategories is a Category with its full subcategory list
// attached, unfiltered by the active flag. Drives the admin UI and the
// storefront mega-menu.
type CategoryWithSubcategories struct {
	models.Category
	Subcategories []models.Subcategory `json:"subcategories"`
}

// DashboardStats holds the admin dashboard aggregates. Every read
// recomputes them from the full product and order sets; nothing is cached
// or maintained incrementally. Revenue is delivery-gated: only orders with
// status "delivered" count.
type DashboardStats struct {
	TotalProducts int64          `json:"totalProducts"`
	TotalOrders   int64          `json:"totalOrders"`
	PendingOrders int64          `json:"pendingOrders"`
	TotalRevenue  int64          `json:"totalRevenue"`
	RecentOrders  []models.Order `json:"recentOrders"`
}

// recentOrderLimit caps DashboardStats.RecentOrders.
const recentOrderLimit = 5

// Storage is the data-access contract shared by all backing engines.
// Update operations have full-replace semantics. Delete of a missing id
// returns ErrNotFound, never a hard failure.
type Storage interface {
	// User operations, kept for authentication
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, input models.UpsertUserInput) (*models.User, error)

	// Product operations
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	// Order operations. Orders are created once at checkout, mutated only
	// through UpdateOrderStatus, and never deleted.
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error)

	// Category operations
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, input models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	// Subcategory operations
	GetSubcategories(ctx context.Context) ([]models.Subcategory, error)
	GetSubcategoriesByCategory(ctx context.Context, categoryID uint) ([]models.Subcategory, error)
	GetSubcategory(ctx context.Context, id uint) (*models.Subcategory, error)
	CreateSubcategory(ctx context.Context, input models.SubcategoryInput) (*models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id uint, input models.SubcategoryInput) (*models.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id uint) error

	// Combined operations
	GetCategoriesWithSubcategories(ctx context.Context) ([]CategoryWithSubcategories, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

// isActiveOrDefault applies the create-time default for the IsActive flag.
func isActiveOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// orderStatusOrDefault applies the create-time default for order status.
func orderStatusOrDefault(s string) string {
	if s == "" {
		return models.OrderStatusPending
	}
	return s
}
