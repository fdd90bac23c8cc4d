package compresspickle

import (
	"bytes"
	"io"
)

// CompressBytes compresses data with the given filter scheme and
// level (0 for the scheme's default). SchemeNone returns a copy;
// archive schemes are not stream filters and fail.
func CompressBytes(data []byte, scheme Scheme, level int) ([]byte, error) {
	var buf bytes.Buffer
	wc, err := createCompressor(scheme, &buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return nil, err
	}
	if err := wc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes undoes CompressBytes for the given scheme.
func DecompressBytes(data []byte, scheme Scheme) ([]byte, error) {
	rc, err := createDecompressor(scheme, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
