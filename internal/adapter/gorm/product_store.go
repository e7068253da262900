package gorm

import (
	"context"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// SaveProduct implements port.ProductStore.
func (s *ProductStore) SaveProduct(ctx context.Context, product model.Product) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	record := fromProduct(product)

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetProductByID implements port.ProductStore.
func (s *ProductStore) GetProductByID(ctx context.Context, id model.ProductID) (model.Product, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var product Product

	if err := db.First(&product, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedProduct{&product}, nil
}

// QueryProducts implements port.ProductStore.
func (s *ProductStore) QueryProducts(ctx context.Context, opts port.QueryProductsOptions) ([]model.Product, int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&Product{}).Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var records []*Product

	query := withPagination(db.Order("created_at asc"), opts.Page, opts.Limit)

	if err := query.Find(&records).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	products := make([]model.Product, 0, len(records))
	for _, r := range records {
		products = append(products, &wrappedProduct{r})
	}

	return products, total, nil
}

// CountProducts implements port.ProductStore.
func (s *ProductStore) CountProducts(ctx context.Context) (int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&Product{}).Count(&total).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// AdjustStock implements port.ProductStore.
func (s *ProductStore) AdjustStock(ctx context.Context, id model.ProductID, delta int64) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return errors.WithStack(adjustStock(tx, id, delta))
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteProduct implements port.ProductStore.
func (s *ProductStore) DeleteProduct(ctx context.Context, id model.ProductID) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := db.Delete(&Product{}, "id = ?", string(id)).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// adjustStock applies a conditional update so the stock can never go below
// zero, whatever the concurrency.
func adjustStock(tx *gorm.DB, id model.ProductID, delta int64) error {
	if delta >= 0 {
		res := tx.Model(&Product{}).Where("id = ?", string(id)).
			UpdateColumn("stock", gorm.Expr("stock + ?", delta))
		if res.Error != nil {
			return errors.WithStack(res.Error)
		}

		if res.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}

	var product Product
	if err := tx.First(&product, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithStack(port.ErrNotFound)
		}

		return errors.WithStack(err)
	}

	res := tx.Model(&Product{}).Where("id = ? and stock >= ?", string(id), -delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return errors.WithStack(res.Error)
	}

	if res.RowsAffected == 0 {
		return errors.Wrapf(port.ErrInsufficientStock, "product '%s'", id)
	}

	return nil
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{
		getDatabase: createGetDatabase(db, &Product{}),
	}
}

var _ port.ProductStore = &ProductStore{}
