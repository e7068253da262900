package gorm

import (
	"context"
	"time"

	"github.com/marchand/storefront/internal/core/model"
	"github.com/marchand/storefront/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlogStore persists posts and their authors.
type BlogStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// SavePost implements port.PostStore.
func (s *BlogStore) SavePost(ctx context.Context, post model.Post) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	record := fromPost(post)

	if err := db.Omit("Author").Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetPostByID implements port.PostStore.
func (s *BlogStore) GetPostByID(ctx context.Context, id model.PostID) (model.Post, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var post Post

	if err := db.Preload("Author").First(&post, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedPost{&post}, nil
}

// QueryPosts implements port.PostStore.
func (s *BlogStore) QueryPosts(ctx context.Context, opts port.QueryPostsOptions) ([]model.Post, int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	query := db.Model(&Post{})

	if opts.OnlyVisible != nil {
		query = query.Where("published = ? and published_at <= ?", true, *opts.OnlyVisible)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var records []*Post

	query = withPagination(query.Preload("Author").Order("created_at desc"), opts.Page, opts.Limit)

	if err := query.Find(&records).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	posts := make([]model.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, &wrappedPost{r})
	}

	return posts, total, nil
}

// PublishPost implements port.PostStore.
func (s *BlogStore) PublishPost(ctx context.Context, id model.PostID, now time.Time) (model.Post, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var post Post

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Author").First(&post, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if post.Published {
			return nil
		}

		post.Published = true
		post.PublishedAt = &now

		if err := tx.Omit("Author").Save(&post).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedPost{&post}, nil
}

// DeletePost implements port.PostStore.
func (s *BlogStore) DeletePost(ctx context.Context, id model.PostID) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := db.Delete(&Post{}, "id = ?", string(id)).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// SaveAuthor implements port.AuthorStore.
func (s *BlogStore) SaveAuthor(ctx context.Context, author model.Author) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	record := fromAuthor(author)

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetAuthorByID implements port.AuthorStore.
func (s *BlogStore) GetAuthorByID(ctx context.Context, id model.AuthorID) (model.Author, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var author Author

	if err := db.First(&author, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedAuthor{&author}, nil
}

// QueryAuthors implements port.AuthorStore.
func (s *BlogStore) QueryAuthors(ctx context.Context) ([]model.Author, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var records []*Author

	if err := db.Order("name asc").Find(&records).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	authors := make([]model.Author, 0, len(records))
	for _, r := range records {
		authors = append(authors, &wrappedAuthor{r})
	}

	return authors, nil
}

func NewBlogStore(db *gorm.DB) *BlogStore {
	return &BlogStore{
		getDatabase: createGetDatabase(db, &Author{}, &Post{}),
	}
}

var (
	_ port.PostStore   = &BlogStore{}
	_ port.AuthorStore = &BlogStore{}
)
