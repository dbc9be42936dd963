package sink

import "github.com/brief-format/brief/internal/pool"

// Growable is a heap-backed Sink that always succeeds, growing its internal
// buffer amortized via pool.ByteBuffer.
type Growable struct {
	buf *pool.ByteBuffer
}

var _ Sink = (*Growable)(nil)

// NewGrowable creates a Growable sink backed by a pooled buffer.
func NewGrowable() *Growable {
	return &Growable{buf: pool.Get()}
}

func (g *Growable) Write(p []byte) error {
	g.buf.MustWrite(p)
	return nil
}

func (g *Growable) Len() int {
	return g.buf.Len()
}

func (g *Growable) Bytes() []byte {
	return g.buf.Bytes()
}

// Reset clears the sink's contents while retaining its backing storage, so it
// can be reused for another encode call.
func (g *Growable) Reset() {
	g.buf.Reset()
}

// Release returns the backing buffer to the pool. The Growable must not be
// used again afterward.
func (g *Growable) Release() {
	pool.Put(g.buf)
	g.buf = nil
}
