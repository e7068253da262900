package gorm

import (
	"time"

	"github.com/marchand/storefront/internal/core/model"
)

type Product struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title    string `gorm:"not null;index"`
	Price    int64
	Discount uint
	Stock    int64
}

type wrappedProduct struct {
	p *Product
}

// ID implements model.Product.
func (w *wrappedProduct) ID() model.ProductID {
	return model.ProductID(w.p.ID)
}

// Title implements model.Product.
func (w *wrappedProduct) Title() string {
	return w.p.Title
}

// Price implements model.Product.
func (w *wrappedProduct) Price() int64 {
	return w.p.Price
}

// Discount implements model.Product.
func (w *wrappedProduct) Discount() uint {
	return w.p.Discount
}

// Stock implements model.Product.
func (w *wrappedProduct) Stock() int64 {
	return w.p.Stock
}

// DiscountedPrice implements model.Product.
func (w *wrappedProduct) DiscountedPrice() int64 {
	return model.ApplyDiscount(w.p.Price, w.p.Discount)
}

var _ model.Product = &wrappedProduct{}

func fromProduct(p model.Product) *Product {
	return &Product{
		ID:       string(p.ID()),
		Title:    p.Title(),
		Price:    p.Price(),
		Discount: p.Discount(),
		Stock:    p.Stock(),
	}
}
