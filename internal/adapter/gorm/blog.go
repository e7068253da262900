package gorm

import (
	"time"

	"github.com/marchand/storefront/internal/core/model"
)

type Author struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name      string `gorm:"not null"`
	BirthDate time.Time

	Posts []*Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

type Post struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title string `gorm:"not null"`
	Body  string

	Author   *Author
	AuthorID string `gorm:"index"`

	Published   bool `gorm:"index"`
	PublishedAt *time.Time
}

type wrappedAuthor struct {
	a *Author
}

// ID implements model.Author.
func (w *wrappedAuthor) ID() model.AuthorID {
	return model.AuthorID(w.a.ID)
}

// Name implements model.Author.
func (w *wrappedAuthor) Name() string {
	return w.a.Name
}

// BirthDate implements model.Author.
func (w *wrappedAuthor) BirthDate() time.Time {
	return w.a.BirthDate
}

var _ model.Author = &wrappedAuthor{}

type wrappedPost struct {
	p *Post
}

// ID implements model.Post.
func (w *wrappedPost) ID() model.PostID {
	return model.PostID(w.p.ID)
}

// Title implements model.Post.
func (w *wrappedPost) Title() string {
	return w.p.Title
}

// Body implements model.Post.
func (w *wrappedPost) Body() string {
	return w.p.Body
}

// Author implements model.Post.
func (w *wrappedPost) Author() model.Author {
	if w.p.Author == nil {
		return nil
	}

	return &wrappedAuthor{w.p.Author}
}

// Published implements model.Post.
func (w *wrappedPost) Published() bool {
	return w.p.Published
}

// PublishedAt implements model.Post.
func (w *wrappedPost) PublishedAt() *time.Time {
	return w.p.PublishedAt
}

var _ model.Post = &wrappedPost{}

func fromAuthor(a model.Author) *Author {
	return &Author{
		ID:        string(a.ID()),
		Name:      a.Name(),
		BirthDate: a.BirthDate(),
	}
}

func fromPost(p model.Post) *Post {
	record := &Post{
		ID:          string(p.ID()),
		Title:       p.Title(),
		Body:        p.Body(),
		Published:   p.Published(),
		PublishedAt: p.PublishedAt(),
	}

	if author := p.Author(); author != nil {
		record.AuthorID = string(author.ID())
	}

	return record
}
