package codec

import (
	"github.com/brief-format/brief/format"
	"github.com/brief-format/brief/internal/options"
)

// Config holds the entry-point choices from §4.6/§9: the Named/Indexed
// serialization mode, the skip_value recursion bound, whether decode rejects
// trailing bytes after the top-level value, and an optional transport
// compression codec layered outside the wire format (see package sink's
// Compressed sink).
type Config struct {
	mode        Mode
	maxDepth    int
	exact       bool
	compression format.CompressionType
}

// DefaultMaxDepth is the recommended minimum from §9's design notes.
const DefaultMaxDepth = 128

// NewConfig builds a Config with brief's defaults — Named mode, a max depth
// of DefaultMaxDepth, exact=true (trailing bytes rejected, per §4.6's
// "default: reject"), no compression — then applies opts in order.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		mode:        Named,
		maxDepth:    DefaultMaxDepth,
		exact:       true,
		compression: format.CompressionNone,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Mode reports the configured Named/Indexed serialization mode.
func (c *Config) Mode() Mode { return c.mode }

// MaxDepth reports the configured skip_value nesting bound, which
// ReadRecordFields passes to value.Decoder.Skip when discarding an unknown
// field's value. Other decode paths do not consult it.
func (c *Config) MaxDepth() int { return c.maxDepth }

// Exact reports whether decode rejects trailing bytes after the top-level
// value.
func (c *Config) Exact() bool { return c.exact }

// Compression reports the configured transport compression codec, if any.
func (c *Config) Compression() format.CompressionType { return c.compression }

// Option is a functional option for configuring a Config.
type Option = options.Option[*Config]

// WithMode records a Named or Indexed choice, reported by Config.Mode.
// brief.Encode takes its mode as an explicit argument and does not read this
// setting. Decode always accepts either form, regardless of this setting.
func WithMode(m Mode) Option {
	return options.NoError(func(c *Config) {
		c.mode = m
	})
}

// WithMaxDepth overrides the skip_value nesting bound (see Config.MaxDepth).
// Depths below 1 are rejected.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth < 1 {
			return errInvalidMaxDepth
		}

		c.maxDepth = depth

		return nil
	})
}

// WithExact controls whether decode rejects any bytes remaining in the source
// after the top-level value, per §4.6. Decode rejects trailing bytes by
// default; pass WithExact(false) to opt into the relaxed behavior, e.g. when
// a single source holds a concatenated sequence of top-level values the
// caller decodes one at a time.
func WithExact(exact bool) Option {
	return options.NoError(func(c *Config) {
		c.exact = exact
	})
}

// WithCompression selects a transport compression codec applied outside the
// wire format proper (see sink.Compressed).
func WithCompression(ct format.CompressionType) Option {
	return options.NoError(func(c *Config) {
		c.compression = ct
	})
}
