package model

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

type PostID string

func NewPostID() PostID {
	return PostID(xid.New().String())
}

type Post interface {
	ID() PostID
	Title() string
	Body() string
	Author() Author
	Published() bool
	PublishedAt() *time.Time
}

// IsVisible returns true when a post should appear on public read paths: it
// must be published and its publication date must not be in the future.
func IsVisible(post Post, now time.Time) bool {
	if !post.Published() {
		return false
	}

	publishedAt := post.PublishedAt()
	if publishedAt == nil {
		return false
	}

	return !publishedAt.After(now)
}

type BasePost struct {
	id          PostID
	title       string
	body        string
	author      Author
	published   bool
	publishedAt *time.Time
}

// ID implements Post.
func (p *BasePost) ID() PostID {
	return p.id
}

// Title implements Post.
func (p *BasePost) Title() string {
	return p.title
}

// Body implements Post.
func (p *BasePost) Body() string {
	return p.body
}

// Author implements Post.
func (p *BasePost) Author() Author {
	return p.author
}

// Published implements Post.
func (p *BasePost) Published() bool {
	return p.published
}

// PublishedAt implements Post.
func (p *BasePost) PublishedAt() *time.Time {
	return p.publishedAt
}

// Publish marks the post as published at the given time. Publishing an
// already published post does not update its publication date.
func (p *BasePost) Publish(now time.Time) {
	if p.published {
		return
	}

	p.published = true
	p.publishedAt = &now
}

var _ Post = &BasePost{}

func NewPost(title, body string, author Author) (*BasePost, error) {
	if title == "" {
		return nil, errors.WithStack(ErrMissingTitle)
	}

	return &BasePost{
		id:     NewPostID(),
		title:  title,
		body:   body,
		author: author,
	}, nil
}
