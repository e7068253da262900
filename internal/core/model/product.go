package model

import (
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var (
	ErrMissingTitle    = errors.New("missing title")
	ErrNegativePrice   = errors.New("negative price")
	ErrInvalidDiscount = errors.New("invalid discount")
)

type ProductID string

func NewProductID() ProductID {
	return ProductID(xid.New().String())
}

type Product interface {
	ID() ProductID
	Title() string
	// Price is the unit price, in cents.
	Price() int64
	// Discount is a percentage in [0, 100].
	Discount() uint
	Stock() int64
	DiscountedPrice() int64
}

// ApplyDiscount returns the price after applying a percentage discount,
// rounded down to the cent.
func ApplyDiscount(price int64, discount uint) int64 {
	if discount >= 100 {
		return 0
	}

	return price * (100 - int64(discount)) / 100
}

type BaseProduct struct {
	id       ProductID
	title    string
	price    int64
	discount uint
	stock    int64
}

// ID implements Product.
func (p *BaseProduct) ID() ProductID {
	return p.id
}

// Title implements Product.
func (p *BaseProduct) Title() string {
	return p.title
}

// Price implements Product.
func (p *BaseProduct) Price() int64 {
	return p.price
}

// Discount implements Product.
func (p *BaseProduct) Discount() uint {
	return p.discount
}

// Stock implements Product.
func (p *BaseProduct) Stock() int64 {
	return p.stock
}

// DiscountedPrice implements Product.
func (p *BaseProduct) DiscountedPrice() int64 {
	return ApplyDiscount(p.price, p.discount)
}

func (p *BaseProduct) SetDiscount(discount uint) error {
	if discount > 100 {
		return errors.WithStack(ErrInvalidDiscount)
	}

	p.discount = discount

	return nil
}

func (p *BaseProduct) SetStock(stock int64) {
	p.stock = stock
}

var _ Product = &BaseProduct{}

func NewProduct(title string, price int64, funcs ...ProductOptionFunc) (*BaseProduct, error) {
	if title == "" {
		return nil, errors.WithStack(ErrMissingTitle)
	}

	if price < 0 {
		return nil, errors.WithStack(ErrNegativePrice)
	}

	opts := NewProductOptions(funcs...)

	if opts.Discount > 100 {
		return nil, errors.WithStack(ErrInvalidDiscount)
	}

	return &BaseProduct{
		id:       NewProductID(),
		title:    title,
		price:    price,
		discount: opts.Discount,
		stock:    opts.Stock,
	}, nil
}

type ProductOptions struct {
	Discount uint
	Stock    int64
}

type ProductOptionFunc func(opts *ProductOptions)

func NewProductOptions(funcs ...ProductOptionFunc) *ProductOptions {
	opts := &ProductOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithDiscount(discount uint) ProductOptionFunc {
	return func(opts *ProductOptions) {
		opts.Discount = discount
	}
}

func WithStock(stock int64) ProductOptionFunc {
	return func(opts *ProductOptions) {
		opts.Stock = stock
	}
}
