// Package compress provides the compression codecs brief layers on top of a
// finished wire-format byte stream — a transport-level concern entirely
// outside §3/§6.3's bit-exact format. brief's wire bytes are identical
// whether or not a codec is applied afterward; within brief, only
// sink.Compressed, source.NewCompressedSlice, and the root package's Encode
// and DecodeBytes (when given codec.WithCompression) use this package.
//
// # Algorithms
//
//   - None (format.CompressionNone) — NoOpCompressor, a pass-through for
//     baseline measurements or data that is already incompressible.
//   - Zstd (format.CompressionZstd) — best compression ratio, moderate
//     speed; a good default for archival or bandwidth-constrained transport.
//   - S2 (format.CompressionS2) — Snappy-family, balances speed and ratio.
//   - LZ4 (format.CompressionLZ4) — fastest decompression, moderate ratio.
//
// # Architecture
//
// Three interfaces:
//
//	type Compressor interface { Compress(data []byte) ([]byte, error) }
//	type Decompressor interface { Decompress(data []byte) ([]byte, error) }
//	type Codec interface { Compressor; Decompressor }
//
// CreateCodec and GetCodec construct or look up a built-in Codec for a
// format.CompressionType.
//
// # Usage
//
//	c, _ := compress.CreateCodec(format.CompressionZstd, "payload")
//	s := sink.NewCompressed(sink.NewGrowable(), c)
//	n, err := brief.Encode(value, s, codec.Named)
//	err = s.Finish() // compresses everything written and flushes it
//
// On decode, source.NewCompressedSlice reverses this: it decompresses the
// whole buffer up front, then hands back an ordinary zero-copy Slice.
//
// # Thread safety
//
// All built-in codecs are safe for concurrent use; each Compress/Decompress
// call is independent and does not share mutable state across goroutines.
package compress
