package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lojatec/lojatec-api/models"
)

// MemoryStorage is a map-backed Storage for development and tests. A single
// RWMutex makes each operation atomic; there is no durability.
type MemoryStorage struct {
	mu sync.RWMutex

	users         map[string]models.User
	products      map[uint]models.Product
	orders        map[uint]models.Order
	categories    map[uint]models.Category
	subcategories map[uint]models.Subcategory

	nextProductID     uint
	nextOrderID       uint
	nextCategoryID    uint
	nextSubcategoryID uint
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:             make(map[string]models.User),
		products:          make(map[uint]models.Product),
		orders:            make(map[uint]models.Order),
		categories:        make(map[uint]models.Category),
		subcategories:     make(map[uint]models.Subcategory),
		nextProductID:     1,
		nextOrderID:       1,
		nextCategoryID:    1,
		nextSubcategoryID: 1,
	}
}

// User operations

func (s *MemoryStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStorage) UpsertUser(ctx context.Context, input models.UpsertUserInput) (*models.User, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user, ok := s.users[input.ID]
	if !ok {
		user = models.User{ID: input.ID, CreatedAt: now}
	}
	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.ProfileImageURL = input.ProfileImageURL
	user.UpdatedAt = now
	s.users[input.ID] = user
	return &user, nil
}

// Product operations

func (s *MemoryStorage) GetProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *MemoryStorage) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	sort.Slice(featured, func(i, j int) bool { return featured[i].ID < featured[j].ID })
	return featured, nil
}

func (s *MemoryStorage) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *MemoryStorage) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:            s.nextProductID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Featured:      input.Featured,
	}
	s.nextProductID++
	s.products[product.ID] = product
	return &product, nil
}

func (s *MemoryStorage) UpdateProduct(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return nil, ErrNotFound
	}
	product := models.Product{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Featured:      input.Featured,
	}
	s.products[id] = product
	return &product, nil
}

func (s *MemoryStorage) DeleteProduct(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// Order operations

func (s *MemoryStorage) GetOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ordersNewestFirstLocked(), nil
}

// ordersNewestFirstLocked returns all orders sorted newest first.
// Caller must hold at least the read lock.
func (s *MemoryStorage) ordersNewestFirstLocked() []models.Order {
	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders
}

func (s *MemoryStorage) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (s *MemoryStorage) CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy the submitted items so the stored snapshot does not share a
	// backing array with the caller.
	items := make([]models.OrderItem, len(input.Items))
	copy(items, input.Items)

	now := time.Now()
	order := models.Order{
		ID:              s.nextOrderID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Items:           items,
		TotalAmount:     input.TotalAmount,
		Status:          orderStatusOrDefault(input.Status),
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.nextOrderID++
	s.orders[order.ID] = order
	return &order, nil
}

func (s *MemoryStorage) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, invalidInput(errInvalidStatus(status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	s.orders[id] = order
	return &order, nil
}

// Category operations

func (s *MemoryStorage) GetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].SortOrder != categories[j].SortOrder {
			return categories[i].SortOrder < categories[j].SortOrder
		}
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

func (s *MemoryStorage) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (s *MemoryStorage) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	category := models.Category{
		ID:          s.nextCategoryID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		IsActive:    isActiveOrDefault(input.IsActive),
		SortOrder:   input.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextCategoryID++
	s.categories[category.ID] = category
	return &category, nil
}

func (s *MemoryStorage) UpdateCategory(ctx context.Context, id uint, input models.CategoryInput) (*models.Category, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	category.Name = input.Name
	category.Slug = input.Slug
	category.Description = input.Description
	category.IsActive = isActiveOrDefault(input.IsActive)
	category.SortOrder = input.SortOrder
	category.UpdatedAt = time.Now()
	s.categories[id] = category
	return &category, nil
}

func (s *MemoryStorage) DeleteCategory(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	// No cascade: subcategories keep their categoryId reference.
	delete(s.categories, id)
	return nil
}

// Subcategory operations

func (s *MemoryStorage) GetSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.subcategoriesSortedLocked(func(models.Subcategory) bool { return true }), nil
}

func (s *MemoryStorage) GetSubcategoriesByCategory(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.subcategoriesSortedLocked(func(sc models.Subcategory) bool {
		return sc.CategoryID == categoryID
	}), nil
}

// subcategoriesSortedLocked returns matching subcategories ordered by
// sortOrder. Caller must hold at least the read lock.
func (s *MemoryStorage) subcategoriesSortedLocked(match func(models.Subcategory) bool) []models.Subcategory {
	subcategories := make([]models.Subcategory, 0)
	for _, sc := range s.subcategories {
		if match(sc) {
			subcategories = append(subcategories, sc)
		}
	}
	sort.Slice(subcategories, func(i, j int) bool {
		if subcategories[i].SortOrder != subcategories[j].SortOrder {
			return subcategories[i].SortOrder < subcategories[j].SortOrder
		}
		return subcategories[i].ID < subcategories[j].ID
	})
	return subcategories
}

func (s *MemoryStorage) GetSubcategory(ctx context.Context, id uint) (*models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subcategory, ok := s.subcategories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &subcategory, nil
}

func (s *MemoryStorage) CreateSubcategory(ctx context.Context, input models.SubcategoryInput) (*models.Subcategory, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	subcategory := models.Subcategory{
		ID:          s.nextSubcategoryID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		IsActive:    isActiveOrDefault(input.IsActive),
		SortOrder:   input.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextSubcategoryID++
	s.subcategories[subcategory.ID] = subcategory
	return &subcategory, nil
}

func (s *MemoryStorage) UpdateSubcategory(ctx context.Context, id uint, input models.SubcategoryInput) (*models.Subcategory, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subcategory, ok := s.subcategories[id]
	if !ok {
		return nil, ErrNotFound
	}
	subcategory.Name = input.Name
	subcategory.Slug = input.Slug
	subcategory.Description = input.Description
	subcategory.CategoryID = input.CategoryID
	subcategory.IsActive = isActiveOrDefault(input.IsActive)
	subcategory.SortOrder = input.SortOrder
	subcategory.UpdatedAt = time.Now()
	s.subcategories[id] = subcategory
	return &subcategory, nil
}

func (s *MemoryStorage) DeleteSubcategory(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subcategories[id]; !ok {
		return ErrNotFound
	}
	delete(s.subcategories, id)
	return nil
}

// Combined operations

func (s *MemoryStorage) GetCategoriesWithSubcategories(ctx context.Context) ([]CategoryWithSubcategories, error) {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CategoryWithSubcategories, 0, len(categories))
	for _, category := range categories {
		subcats, err := s.GetSubcategoriesByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, CategoryWithSubcategories{
			Category:      category,
			Subcategories: subcats,
		})
	}
	return result, nil
}

func (s *MemoryStorage) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := s.ordersNewestFirstLocked()

	stats := &DashboardStats{
		TotalProducts: int64(len(s.products)),
		TotalOrders:   int64(len(orders)),
	}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusDelivered:
			stats.TotalRevenue += int64(o.TotalAmount)
		}
	}
	if len(orders) > recentOrderLimit {
		orders = orders[:recentOrderLimit]
	}
	stats.RecentOrders = orders
	return stats, nil
}
