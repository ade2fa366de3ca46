package render

import (
	"io"
	"os"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// Options holds Renderer settings.
type Options struct {
	Format Format
	Color  bool
	Writer io.Writer
}

// Option customizes a Renderer.
type Option func(*Options)

// WithFormat selects text or JSON output. Unknown values fall back to text.
func WithFormat(f Format) Option {
	return func(o *Options) {
		if f == JSON {
			o.Format = JSON
			return
		}
		o.Format = Text
	}
}

// WithColor toggles lipgloss colours in text output.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithWriter sets the destination. A nil writer is ignored.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Writer = w
		}
	}
}

// DefaultOptions returns text output without colour on stdout.
func DefaultOptions() Options {
	return Options{Format: Text, Writer: os.Stdout}
}
