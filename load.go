package compresspickle

import (
	"bytes"
	"fmt"
	"io"
)

// Load reads path, undoes the compression transform, and decodes the
// payload into the pointer v. Scheme selection mirrors Save: inferred
// from the extension by default, concrete via WithScheme (with the
// same extension normalization, so a Load after a Save with identical
// arguments finds the file the Save wrote).
func Load(path string, v any, opts ...Option) error {
	cfg := newConfig(true, opts)
	path, d, err := resolvePath(path, cfg.scheme, cfg)
	if err != nil {
		return err
	}
	if err := cfg.validate(d); err != nil {
		return err
	}
	t, err := openReadTarget(path, nil, d, cfg)
	if err != nil {
		return err
	}
	err = cfg.enc().Decode(t.stream, v)
	if cerr := t.Close(); err == nil {
		err = cerr
	}
	return err
}

// LoadReader decodes a value from a caller-supplied stream. The
// scheme is mandatory and concrete; the stream is never closed.
// Archive schemes need random access, so a plain stream is buffered
// in memory before the archive is opened.
func LoadReader(r io.Reader, v any, scheme Scheme, opts ...Option) error {
	if scheme == SchemeInfer || scheme == "" {
		return fmt.Errorf("%w: a concrete scheme is required when reading from a stream", ErrInvalidArgument)
	}
	d, err := lookup(scheme)
	if err != nil {
		return err
	}
	cfg := newConfig(false, opts)
	if err := cfg.validate(d); err != nil {
		return err
	}
	t, err := openReadTarget("", r, d, cfg)
	if err != nil {
		return err
	}
	err = cfg.enc().Decode(t.stream, v)
	if cerr := t.Close(); err == nil {
		err = cerr
	}
	return err
}

// Unmarshal decodes a value from a byte slice produced by Marshal
// (or by any writer of the same scheme and codec).
func Unmarshal(data []byte, v any, scheme Scheme, opts ...Option) error {
	return LoadReader(bytes.NewReader(data), v, scheme, opts...)
}
