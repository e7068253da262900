package fixtures

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	adapterGorm "github.com/marchand/storefront/internal/adapter/gorm"
	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
)

// Stores bundles the stores a fixture file can write to.
type Stores struct {
	Products port.ProductStore
	Orders   interface {
		port.OrderStore
		port.Checkout
	}
	Posts   port.PostStore
	Authors port.AuthorStore
}

func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Products: adapterGorm.NewProductStore(db),
		Orders:   adapterGorm.NewOrderStore(db),
		Posts:    adapterGorm.NewBlogStore(db),
		Authors:  adapterGorm.NewBlogStore(db),
	}
}

type productFixture struct {
	Title    string `yaml:"title"`
	Price    int64  `yaml:"price"`
	Discount uint   `yaml:"discount"`
	Stock    int64  `yaml:"stock"`
}

type authorFixture struct {
	Name      string    `yaml:"name"`
	BirthDate time.Time `yaml:"birth_date"`
}

type postFixture struct {
	Title       string    `yaml:"title"`
	Body        string    `yaml:"body"`
	Author      string    `yaml:"author"`
	Published   bool      `yaml:"published"`
	PublishedAt time.Time `yaml:"published_at"`
}

type fixtureFile struct {
	Products []productFixture `yaml:"products"`
	Authors  []authorFixture  `yaml:"authors"`
	Posts    []postFixture    `yaml:"posts"`
}

// Set indexes the saved entities by title or name so callers can retrieve
// the identifiers generated at load time.
type Set struct {
	Products map[string]model.Product
	Authors  map[string]model.Author
	Posts    map[string]model.Post
}

// Load reads a yaml fixture file and saves its entities through the given
// stores. Posts reference their author by name.
func Load(ctx context.Context, stores *Stores, filename string) (*Set, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var file fixtureFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WithStack(err)
	}

	set := &Set{
		Products: make(map[string]model.Product),
		Authors:  make(map[string]model.Author),
		Posts:    make(map[string]model.Post),
	}

	for _, f := range file.Products {
		product, err := model.NewProduct(f.Title, f.Price,
			model.WithDiscount(f.Discount),
			model.WithStock(f.Stock),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create product '%s'", f.Title)
		}

		if err := stores.Products.SaveProduct(ctx, product); err != nil {
			return nil, errors.Wrapf(err, "could not save product '%s'", f.Title)
		}

		set.Products[f.Title] = product
	}

	for _, f := range file.Authors {
		author, err := model.NewAuthor(f.Name, f.BirthDate)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create author '%s'", f.Name)
		}

		if err := stores.Authors.SaveAuthor(ctx, author); err != nil {
			return nil, errors.Wrapf(err, "could not save author '%s'", f.Name)
		}

		set.Authors[f.Name] = author
	}

	for _, f := range file.Posts {
		author, exists := set.Authors[f.Author]
		if !exists {
			return nil, errors.Errorf("post '%s' references unknown author '%s'", f.Title, f.Author)
		}

		post, err := model.NewPost(f.Title, f.Body, author)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create post '%s'", f.Title)
		}

		if f.Published {
			post.Publish(f.PublishedAt)
		}

		if err := stores.Posts.SavePost(ctx, post); err != nil {
			return nil, errors.Wrapf(err, "could not save post '%s'", f.Title)
		}

		set.Posts[f.Title] = post
	}

	return set, nil
}
