package parse

import "context"

type parseOpts struct {
	ctx      context.Context
	comments bool
	format   string
}

type ParseOption func(*parseOpts)

// ParseContext sets the context passed to the underlying parser.
func ParseContext(ctx context.Context) ParseOption {
	return func(o *parseOpts) { o.ctx = ctx }
}

// ParseComments controls whether comments are attached to nodes. The
// default is true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParseFormatName sets the format name reported in syntax errors.
func ParseFormatName(name string) ParseOption {
	return func(o *parseOpts) { o.format = name }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{
		ctx:      context.Background(),
		comments: true,
		format:   "javascript",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
