package model

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestPostPublish(t *testing.T) {
	post := newTestPost(t)

	if e, g := false, post.Published(); e != g {
		t.Errorf("post.Published(): expected %v, got %v", e, g)
	}

	if post.PublishedAt() != nil {
		t.Errorf("post.PublishedAt(): expected nil, got %v", post.PublishedAt())
	}

	firstPublication := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	post.Publish(firstPublication)

	if e, g := true, post.Published(); e != g {
		t.Errorf("post.Published(): expected %v, got %v", e, g)
	}

	if e, g := firstPublication, *post.PublishedAt(); !e.Equal(g) {
		t.Errorf("post.PublishedAt(): expected %v, got %v", e, g)
	}

	// Republishing must not move the original publication date

	post.Publish(firstPublication.Add(24 * time.Hour))

	if e, g := firstPublication, *post.PublishedAt(); !e.Equal(g) {
		t.Errorf("post.PublishedAt(): expected %v, got %v", e, g)
	}
}

func TestPostVisibility(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	draft := newTestPost(t)

	if e, g := false, IsVisible(draft, now); e != g {
		t.Errorf("IsVisible(draft, now): expected %v, got %v", e, g)
	}

	published := newTestPost(t)
	published.Publish(now.Add(-time.Hour))

	if e, g := true, IsVisible(published, now); e != g {
		t.Errorf("IsVisible(published, now): expected %v, got %v", e, g)
	}

	scheduled := newTestPost(t)
	scheduled.Publish(now.Add(time.Hour))

	if e, g := false, IsVisible(scheduled, now); e != g {
		t.Errorf("IsVisible(scheduled, now): expected %v, got %v", e, g)
	}
}

func newTestPost(t *testing.T) *BasePost {
	t.Helper()

	author, err := NewAuthor("Dummy", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	post, err := NewPost("My first post", "Hello, world.", author)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return post
}
