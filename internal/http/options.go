package http

import "net/http"

type Middleware func(http.Handler) http.Handler

type Options struct {
	Address     string
	BaseURL     string
	Mounts      map[string]http.Handler
	Middlewares []Middleware
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:     ":3003",
		BaseURL:     "",
		Mounts:      map[string]http.Handler{},
		Middlewares: []Middleware{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

// WithMiddleware wraps the whole mounted tree; middlewares run in the
// given order, outermost first.
func WithMiddleware(middlewares ...Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middlewares...)
	}
}
