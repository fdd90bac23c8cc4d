// Package compresspickle persists arbitrary Go values to files, byte
// slices or streams, applying a compression transform chosen
// explicitly or inferred from the filename extension.
//
// It is a convenience layer: serialization is delegated to a pluggable
// Codec (CBOR by default) and compression to established compression
// libraries. The package's own job is the mapping between scheme names
// and extensions, and picking the right stream wrapper for each scheme.
//
// # Features
//
//   - 9 schemes: none, gzip, bzip2, lzma/xz, zip, zstd, lz4, brotli, snappy
//   - Scheme inference from filename extensions, with a configurable
//     policy for unrecognized extensions
//   - 4 codecs: CBOR (default), gob, JSON, and Python pickle for
//     artifacts shared with the Python compress_pickle package
//   - Caller-supplied streams are wrapped, never closed
//   - Zip targets hold a single member named after the base filename
//
// # Quick Start
//
//	import cp "github.com/ML-and-AI-repo/compress-pickle"
//
//	type State struct {
//	    Best  string
//	    Score int
//	}
//
//	// Write state.gz, gzip inferred from the extension.
//	err := cp.Save(State{Best: "b2b4", Score: 17}, "state.gz")
//
//	// Read it back.
//	var got State
//	err = cp.Load("state.gz", &got)
//
//	// Bytes instead of files; the scheme is explicit because there
//	// is no filename to infer from.
//	blob, err := cp.Marshal(got, cp.SchemeZstd)
//	err = cp.Unmarshal(blob, &got, cp.SchemeZstd)
//
// # Scheme Selection Guide
//
//   - Interchange with non-Go tooling: gzip or zip
//   - General purpose: zstd - best balance of speed and ratio
//   - Maximum speed: lz4 or snappy
//   - Maximum compression: brotli or lzma
//   - Already-compressed payloads: none (canonical extension .bin)
//
// All operations are synchronous and stateless; the scheme registry is
// immutable after init, so concurrent calls need no coordination.
package compresspickle
