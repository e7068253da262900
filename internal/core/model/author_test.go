package model

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestAuthorAge(t *testing.T) {
	type testCase struct {
		Name      string
		BirthDate time.Time
		Now       time.Time
		Expected  int
	}

	testCases := []testCase{
		{
			Name:      "BirthdayAlreadyPassed",
			BirthDate: time.Date(1984, time.March, 12, 0, 0, 0, 0, time.UTC),
			Now:       time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
			Expected:  42,
		},
		{
			Name:      "BirthdayStillToCome",
			BirthDate: time.Date(1984, time.November, 3, 0, 0, 0, 0, time.UTC),
			Now:       time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
			Expected:  41,
		},
		{
			Name:      "BirthdayToday",
			BirthDate: time.Date(2000, time.August, 29, 0, 0, 0, 0, time.UTC),
			Now:       time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC),
			Expected:  26,
		},
		{
			Name:      "NotBornYet",
			BirthDate: time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
			Now:       time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
			Expected:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			author, err := NewAuthor("Dummy", tc.BirthDate)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, Age(author, tc.Now); e != g {
				t.Errorf("Age(author, now): expected %d, got %d", e, g)
			}
		})
	}
}

func TestAuthorIsAdult(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	adult, err := NewAuthor("Adult", time.Date(2008, time.August, 28, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := true, IsAdult(adult, now); e != g {
		t.Errorf("IsAdult(adult, now): expected %v, got %v", e, g)
	}

	minor, err := NewAuthor("Minor", time.Date(2008, time.August, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := false, IsAdult(minor, now); e != g {
		t.Errorf("IsAdult(minor, now): expected %v, got %v", e, g)
	}
}

func TestAuthorValidation(t *testing.T) {
	if _, err := NewAuthor("", time.Now()); !errors.Is(err, ErrMissingName) {
		t.Errorf("NewAuthor(\"\", ...): expected ErrMissingName, got %+v", err)
	}
}
