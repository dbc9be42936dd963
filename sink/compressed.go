package sink

import "github.com/brief-format/brief/compress"

// Compressed accumulates encoded bytes like Growable, then compresses the
// whole finished stream through a compress.Codec on Finish and forwards the
// result to dst. This keeps compression strictly a transport-layer wrapper
// around a complete top-level value, outside the wire format itself (§6.3's
// bytes are exactly what a Growable or Fixed sink would have held).
type Compressed struct {
	raw   *Growable
	codec compress.Codec
	dst   Sink
}

var _ Sink = (*Compressed)(nil)

// NewCompressed creates a Compressed sink that buffers into its own Growable
// buffer and, on Finish, writes codec's compressed output to dst.
func NewCompressed(dst Sink, codec compress.Codec) *Compressed {
	return &Compressed{raw: NewGrowable(), codec: codec, dst: dst}
}

func (c *Compressed) Write(p []byte) error {
	return c.raw.Write(p)
}

func (c *Compressed) Len() int {
	return c.raw.Len()
}

// Bytes returns the uncompressed bytes buffered so far, not dst's contents —
// mirrors Growable until Finish is called.
func (c *Compressed) Bytes() []byte {
	return c.raw.Bytes()
}

// Finish compresses everything written so far and writes the compressed
// result to dst. The Compressed sink must not be written to again afterward.
func (c *Compressed) Finish() error {
	compressed, err := c.codec.Compress(c.raw.Bytes())
	if err != nil {
		return err
	}

	return c.dst.Write(compressed)
}

// Release returns the internal buffer to its pool. Call after Finish.
func (c *Compressed) Release() {
	c.raw.Release()
}
