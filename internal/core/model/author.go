package model

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var ErrMissingName = errors.New("missing name")

type AuthorID string

func NewAuthorID() AuthorID {
	return AuthorID(xid.New().String())
}

type Author interface {
	ID() AuthorID
	Name() string
	BirthDate() time.Time
}

// Age returns the age of the author at the given time, accounting for
// whether their birthday already happened that year.
func Age(author Author, now time.Time) int {
	birthDate := author.BirthDate()

	age := now.Year() - birthDate.Year()

	anniversary := time.Date(now.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		age--
	}

	if age < 0 {
		return 0
	}

	return age
}

func IsAdult(author Author, now time.Time) bool {
	return Age(author, now) >= 18
}

type BaseAuthor struct {
	id        AuthorID
	name      string
	birthDate time.Time
}

// ID implements Author.
func (a *BaseAuthor) ID() AuthorID {
	return a.id
}

// Name implements Author.
func (a *BaseAuthor) Name() string {
	return a.name
}

// BirthDate implements Author.
func (a *BaseAuthor) BirthDate() time.Time {
	return a.birthDate
}

var _ Author = &BaseAuthor{}

func NewAuthor(name string, birthDate time.Time) (*BaseAuthor, error) {
	if name == "" {
		return nil, errors.WithStack(ErrMissingName)
	}

	return &BaseAuthor{
		id:        NewAuthorID(),
		name:      name,
		birthDate: birthDate,
	}, nil
}
