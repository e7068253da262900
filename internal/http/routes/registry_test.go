package routes

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRegistryReverse(t *testing.T) {
	type testCase struct {
		Name          string
		RouteName     string
		Pairs         []string
		Expected      string
		ExpectedError error
	}

	registry := NewRegistry()
	registry.Register("product-list", "GET /api/v1/products")
	registry.Register("product-detail", "GET /api/v1/products/{productID}")
	registry.Register("post-publish", "POST /api/v1/posts/{postID}/publish")

	testCases := []testCase{
		{
			Name:      "WithoutParameters",
			RouteName: "product-list",
			Expected:  "/api/v1/products",
		},
		{
			Name:      "WithParameter",
			RouteName: "product-detail",
			Pairs:     []string{"productID", "d0excjjh3ccotpella7g"},
			Expected:  "/api/v1/products/d0excjjh3ccotpella7g",
		},
		{
			Name:      "ParameterInTheMiddle",
			RouteName: "post-publish",
			Pairs:     []string{"postID", "d0excjjh3ccotpella80"},
			Expected:  "/api/v1/posts/d0excjjh3ccotpella80/publish",
		},
		{
			Name:      "EscapesValues",
			RouteName: "product-detail",
			Pairs:     []string{"productID", "a/b"},
			Expected:  "/api/v1/products/a%2Fb",
		},
		{
			Name:          "UnknownRoute",
			RouteName:     "nope",
			ExpectedError: ErrUnknownRoute,
		},
		{
			Name:          "MissingParameter",
			RouteName:     "product-detail",
			ExpectedError: ErrMissingParameter,
		},
		{
			Name:          "UnusedParameter",
			RouteName:     "product-list",
			Pairs:         []string{"productID", "d0excjjh3ccotpella7g"},
			ExpectedError: ErrUnusedParameter,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			path, err := registry.Reverse(tc.RouteName, tc.Pairs...)

			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("registry.Reverse(...): expected error '%v', got %+v", tc.ExpectedError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, path; e != g {
				t.Errorf("registry.Reverse(...): expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestRegistryRegisterTwice(t *testing.T) {
	registry := NewRegistry()
	registry.Register("home", "GET /")

	// Registering the same name with the same pattern is a no-op

	registry.Register("home", "GET /")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("registry.Register(...): expected panic on conflicting pattern")
		}
	}()

	registry.Register("home", "GET /other")
}

func TestRegistryNames(t *testing.T) {
	registry := NewRegistry()
	registry.Register("b", "GET /b")
	registry.Register("a", "GET /a")

	names := registry.Names()

	if e, g := 2, len(names); e != g {
		t.Fatalf("len(names): expected %d, got %d", e, g)
	}

	if e, g := "a", names[0]; e != g {
		t.Errorf("names[0]: expected '%s', got '%s'", e, g)
	}
}
