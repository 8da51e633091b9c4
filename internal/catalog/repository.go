package catalog

import (
	"context"

	"github.com/orderdesk/orderdesk-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository provides read access to the partner and product tables.
// Catalog rows are seeded at boot and never mutated by request handling,
// so every method here is a side-effect-free read.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// ListPartners returns all partners ordered by id.
func (r *Repository) ListPartners(ctx context.Context) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}

// ListProducts returns all products ordered by id.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FindPartner loads one partner by id.
func (r *Repository) FindPartner(ctx context.Context, id int64) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

// FindProduct loads one product by id.
func (r *Repository) FindProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductPrice returns the current min_price for the product id.
func (r *Repository) GetProductPrice(ctx context.Context, id int64) (decimal.Decimal, error) {
	product, err := r.FindProduct(ctx, id)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return product.MinPrice, nil
}
