package compresspickle

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// createCompressor wraps w with the compression filter for the given
// scheme. Level 0 selects the scheme's default level. SchemeNone
// returns a passthrough; archive schemes are not filters and fail.
func createCompressor(s Scheme, w io.Writer, level int) (io.WriteCloser, error) {
	switch s {
	case SchemeNone:
		return nopWriteCloser{w}, nil
	case SchemeGzip:
		return createGzipCompressor(w, level)
	case SchemeBzip2:
		return createBzip2Compressor(w, level)
	case SchemeLZMA:
		return xz.NewWriter(w)
	case SchemeZstd:
		return createZstdCompressor(w, level)
	case SchemeLZ4:
		return createLZ4Compressor(w, level)
	case SchemeBrotli:
		return createBrotliCompressor(w, level)
	case SchemeSnappy:
		return snappy.NewBufferedWriter(w), nil
	case SchemeZip:
		return nil, fmt.Errorf("%w: zip is an archive container, not a stream filter", ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
}

// createDecompressor wraps r with the decompression filter for the
// given scheme.
func createDecompressor(s Scheme, r io.Reader) (io.ReadCloser, error) {
	switch s {
	case SchemeNone:
		return io.NopCloser(r), nil
	case SchemeGzip:
		return gzip.NewReader(r)
	case SchemeBzip2:
		return bzip2.NewReader(r, nil)
	case SchemeLZMA:
		zr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(zr), nil
	case SchemeZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case SchemeLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case SchemeBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case SchemeSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case SchemeZip:
		return nil, fmt.Errorf("%w: zip is an archive container, not a stream filter", ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
}

func createGzipCompressor(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	return gzip.NewWriterLevel(w, level)
}

func createBzip2Compressor(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = bzip2.DefaultCompression
	}
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
}

func createZstdCompressor(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		return zstd.NewWriter(w)
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
}

// lz4Levels maps the numeric 1-9 range onto the lz4 level constants.
var lz4Levels = []lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

func createLZ4Compressor(w io.Writer, level int) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	if level > 0 {
		if level >= len(lz4Levels) {
			level = len(lz4Levels) - 1
		}
		if err := zw.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
			return nil, err
		}
	}
	return zw, nil
}

func createBrotliCompressor(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = brotli.DefaultCompression
	}
	return brotli.NewWriterLevel(w, level), nil
}

// nopWriteCloser is the write-side counterpart of io.NopCloser.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
