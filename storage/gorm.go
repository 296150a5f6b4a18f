package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lojatec/lojatec-api/models"
)

// GormStorage implements Storage on top of a relational engine via GORM.
// The same implementation serves SQLite (embedded file), PostgreSQL and
// MySQL; the dialector is chosen in config.ConnectDatabase.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage wraps an open GORM handle.
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// AutoMigrate creates or updates the schema for every model, including the
// users/sessions tables kept for authentication.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Order{},
	)
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// User operations

func (s *GormStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStorage) UpsertUser(ctx context.Context, input models.UpsertUserInput) (*models.User, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	user := models.User{
		ID:              input.ID,
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, input.ID)
}

// Product operations

func (s *GormStorage) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStorage) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("featured = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStorage) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

func (s *GormStorage) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	product := models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Featured:      input.Featured,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStorage) UpdateProduct(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translateErr(err)
	}
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.CategoryID = input.CategoryID
	product.SubcategoryID = input.SubcategoryID
	product.Featured = input.Featured
	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStorage) DeleteProduct(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Order operations

func (s *GormStorage) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStorage) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *GormStorage) CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	items := make([]models.OrderItem, len(input.Items))
	copy(items, input.Items)

	order := models.Order{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Items:           items,
		TotalAmount:     input.TotalAmount,
		Status:          orderStatusOrDefault(input.Status),
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *GormStorage) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, invalidInput(errInvalidStatus(status))
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, translateErr(err)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Category operations

func (s *GormStorage) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Order("sort_order, id").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStorage) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &category, nil
}

func (s *GormStorage) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	category := models.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		IsActive:    isActiveOrDefault(input.IsActive),
		SortOrder:   input.SortOrder,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStorage) UpdateCategory(ctx context.Context, id uint, input models.CategoryInput) (*models.Category, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translateErr(err)
	}
	category.Name = input.Name
	category.Slug = input.Slug
	category.Description = input.Description
	category.IsActive = isActiveOrDefault(input.IsActive)
	category.SortOrder = input.SortOrder
	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStorage) DeleteCategory(ctx context.Context, id uint) error {
	// No cascade: subcategories keep their categoryId reference.
	res := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Subcategory operations

func (s *GormStorage) GetSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := s.db.WithContext(ctx).
		Order("sort_order, id").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (s *GormStorage) GetSubcategoriesByCategory(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order, id").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (s *GormStorage) GetSubcategory(ctx context.Context, id uint) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	if err := s.db.WithContext(ctx).First(&subcategory, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &subcategory, nil
}

func (s *GormStorage) CreateSubcategory(ctx context.Context, input models.SubcategoryInput) (*models.Subcategory, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	subcategory := models.Subcategory{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		IsActive:    isActiveOrDefault(input.IsActive),
		SortOrder:   input.SortOrder,
	}
	if err := s.db.WithContext(ctx).Create(&subcategory).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (s *GormStorage) UpdateSubcategory(ctx context.Context, id uint, input models.SubcategoryInput) (*models.Subcategory, error) {
	if err := models.ValidateInput(input); err != nil {
		return nil, invalidInput(err)
	}

	var subcategory models.Subcategory
	if err := s.db.WithContext(ctx).First(&subcategory, id).Error; err != nil {
		return nil, translateErr(err)
	}
	subcategory.Name = input.Name
	subcategory.Slug = input.Slug
	subcategory.Description = input.Description
	subcategory.CategoryID = input.CategoryID
	subcategory.IsActive = isActiveOrDefault(input.IsActive)
	subcategory.SortOrder = input.SortOrder
	if err := s.db.WithContext(ctx).Save(&subcategory).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (s *GormStorage) DeleteSubcategory(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Subcategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Combined operations

func (s *GormStorage) GetCategoriesWithSubcategories(ctx context.Context) ([]CategoryWithSubcategories, error) {
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

// GetDashboardStats recomputes every aggregate from the live tables.
// Revenue counts delivered orders only.
func (s *GormStorage) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &DashboardStats{}

	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	var recent []models.Order
	err = db.Order("created_at DESC, id DESC").
		Limit(recentOrderLimit).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = recent
	return stats, nil
}
