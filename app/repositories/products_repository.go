package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"gorm.io/gorm"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Search(ctx context.Context, q string, limit int) ([]models.Product, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	List(ctx context.Context, p helpers.Pagination) ([]models.Product, int64, error)

	// Create and Update also maintain the category links and gallery
	// rows, all in one transaction.
	Create(ctx context.Context, product *models.Product, categoryIDs []string, gallery []string) error
	Update(ctx context.Context, product *models.Product, categoryIDs []string, gallery []string) error
	Delete(ctx context.Context, id string) error
}

type gormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Gallery").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *gormProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Gallery").
		Where("slug = ? AND status = ?", slug, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *gormProductRepository) Search(ctx context.Context, q string, limit int) ([]models.Product, error) {
	var products []models.Product
	like := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Where("status = ?", true).
		Where("name LIKE ? OR slug LIKE ?", like, like).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *gormProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *gormProductRepository) List(ctx context.Context, p helpers.Pagination) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})
	if p.Search != "" {
		like := "%" + p.Search + "%"
		query = query.Where("name LIKE ? OR slug LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Preload("Categories").
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&products).Error
	return products, total, err
}

func (r *gormProductRepository) Create(ctx context.Context, product *models.Product, categoryIDs []string, gallery []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if err := r.replaceCategories(tx, product, categoryIDs); err != nil {
			return err
		}
		return r.replaceGallery(tx, product.ID, gallery)
	})
}

func (r *gormProductRepository) Update(ctx context.Context, product *models.Product, categoryIDs []string, gallery []string) error {
	product.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Gallery").Save(product).Error; err != nil {
			return err
		}
		if err := r.replaceCategories(tx, product, categoryIDs); err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return r.replaceGallery(tx, product.ID, gallery)
	})
}

func (r *gormProductRepository) replaceCategories(tx *gorm.DB, product *models.Product, categoryIDs []string) error {
	categories := make([]models.Category, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, models.Category{ID: id})
	}
	return tx.Model(product).Association("Categories").Replace(categories)
}

func (r *gormProductRepository) replaceGallery(tx *gorm.DB, productID string, gallery []string) error {
	for _, url := range gallery {
		image := models.ProductImage{ProductID: productID, ImageURL: url}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *gormProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
