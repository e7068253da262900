package routes

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrUnknownRoute     = errors.New("unknown route")
	ErrMissingParameter = errors.New("missing parameter")
	ErrUnusedParameter  = errors.New("unused parameter")
)

// Registry maps route names to their public mux patterns so handlers and
// templates can build URLs without hardcoding paths.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]string
}

// Register associates a name with a mux pattern of the form
// "METHOD /path/with/{params}". It returns the pattern unchanged so
// registration can wrap a mux.Handle call. Registering the same name twice
// panics: route names are app-wide constants.
func (r *Registry) Register(name string, pattern string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.patterns[name]; exists && existing != pattern {
		panic(fmt.Sprintf("route '%s' already registered with pattern '%s'", name, existing))
	}

	r.patterns[name] = pattern

	return pattern
}

// Reverse builds the URL path for a named route, replacing each {param}
// placeholder with the matching value from the name/value pairs.
func (r *Registry) Reverse(name string, pairs ...string) (string, error) {
	if len(pairs)%2 != 0 {
		return "", errors.Errorf("expected name/value pairs, got %d values", len(pairs))
	}

	r.mu.RLock()
	pattern, exists := r.patterns[name]
	r.mu.RUnlock()

	if !exists {
		return "", errors.Wrapf(ErrUnknownRoute, "'%s'", name)
	}

	path := pattern
	if _, after, found := strings.Cut(pattern, " "); found {
		path = after
	}

	for i := 0; i < len(pairs); i += 2 {
		placeholder := "{" + pairs[i] + "}"
		if !strings.Contains(path, placeholder) {
			return "", errors.Wrapf(ErrUnusedParameter, "'%s'", pairs[i])
		}

		path = strings.ReplaceAll(path, placeholder, url.PathEscape(pairs[i+1]))
	}

	if start := strings.Index(path, "{"); start != -1 {
		end := strings.Index(path[start:], "}")
		if end == -1 {
			end = len(path) - start
		}

		return "", errors.Wrapf(ErrMissingParameter, "'%s'", strings.Trim(path[start:start+end+1], "{}"))
	}

	return path, nil
}

// MustReverse is Reverse for routes known at compile time; it panics on error.
func (r *Registry) MustReverse(name string, pairs ...string) string {
	path, err := r.Reverse(name, pairs...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return path
}

// Names returns the registered route names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Pattern returns the pattern registered under the given name.
func (r *Registry) Pattern(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pattern, exists := r.patterns[name]

	return pattern, exists
}

func NewRegistry() *Registry {
	return &Registry{
		patterns: map[string]string{},
	}
}

var defaultRegistry = NewRegistry()

func Register(name string, pattern string) string {
	return defaultRegistry.Register(name, pattern)
}

func Reverse(name string, pairs ...string) (string, error) {
	return defaultRegistry.Reverse(name, pairs...)
}

func MustReverse(name string, pairs ...string) string {
	return defaultRegistry.MustReverse(name, pairs...)
}

func Names() []string {
	return defaultRegistry.Names()
}

func Pattern(name string) (string, bool) {
	return defaultRegistry.Pattern(name)
}
