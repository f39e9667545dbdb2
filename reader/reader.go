package reader

import (
	"io"
	"strings"

	"github.com/mahimahi42/lispy/value"
)

// DefaultMaxDepth is the default nesting limit for sexpr/qexpr lists.
const DefaultMaxDepth = 1000

// DefaultMaxListLength is the default limit on the number of children a
// single sexpr/qexpr list may hold.
const DefaultMaxListLength = 10000

// Reader parses source text into a sequence of top-level values.
type Reader struct {
	maxDepth      int
	maxListLength int
}

// Option configures a Reader.
type Option func(*Reader)

// WithMaxDepth overrides the nesting limit. Zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(r *Reader) { r.maxDepth = depth }
}

// WithMaxListLength overrides the per-list child-count limit. Zero
// disables the limit.
func WithMaxListLength(length int) Option {
	return func(r *Reader) { r.maxListLength = length }
}

// New creates a Reader with the given options applied over the defaults.
func New(opts ...Option) *Reader {
	r := &Reader{maxDepth: DefaultMaxDepth, maxListLength: DefaultMaxListLength}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadProgram parses every top-level expression out of r, in order.
func (rd *Reader) ReadProgram(r io.Reader) ([]value.Value, error) {
	s := newScanner(r)
	s.maxDepth = rd.maxDepth
	s.maxListLength = rd.maxListLength
	root, err := s.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(root.Children))
	for _, c := range root.Children {
		v, err := FromNode(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadString is a convenience wrapper around ReadProgram for in-memory
// source text, as used by the REPL for one line at a time.
func (rd *Reader) ReadString(src string) ([]value.Value, error) {
	return rd.ReadProgram(strings.NewReader(src))
}
