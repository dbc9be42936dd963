package source

import "github.com/brief-format/brief/compress"

// NewCompressedSlice decompresses data through codec and wraps the result in
// a Slice, mirroring sink.Compressed on the decode side: compression is
// resolved once, up front, against the whole stream, after which decoding
// proceeds as ordinary zero-copy borrowing from the decompressed buffer.
func NewCompressedSlice(data []byte, codec compress.Codec) (*Slice, error) {
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return NewSlice(raw), nil
}
