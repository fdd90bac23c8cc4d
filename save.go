package compresspickle

import (
	"bytes"
	"fmt"
	"io"
)

// Save serializes v and writes it to path. The compression scheme is
// inferred from the path's extension unless WithScheme supplies a
// concrete one, in which case the path is normalized to the scheme's
// canonical extension (disable via WithNoExtensionRewrite). Every
// handle Save opens is closed before it returns, on success or error.
func Save(v any, path string, opts ...Option) error {
	cfg := newConfig(true, opts)
	path, d, err := resolvePath(path, cfg.scheme, cfg)
	if err != nil {
		return err
	}
	if err := cfg.validate(d); err != nil {
		return err
	}
	t, err := openWriteTarget(path, nil, d, cfg)
	if err != nil {
		return err
	}
	err = cfg.enc().Encode(t.stream, v)
	if cerr := t.Close(); err == nil {
		err = cerr
	}
	return err
}

// SaveWriter serializes v onto a caller-supplied stream. The scheme
// is mandatory and concrete: there is no filename to infer from, so
// SchemeInfer fails with ErrInvalidArgument. The stream is never
// closed; after a successful return it is positioned just past the
// written data. Archive schemes write a single member named "data"
// unless WithArchiveMember overrides it.
func SaveWriter(v any, w io.Writer, scheme Scheme, opts ...Option) error {
	if scheme == SchemeInfer || scheme == "" {
		return fmt.Errorf("%w: a concrete scheme is required when writing to a stream", ErrInvalidArgument)
	}
	d, err := lookup(scheme)
	if err != nil {
		return err
	}
	cfg := newConfig(false, opts)
	if err := cfg.validate(d); err != nil {
		return err
	}
	t, err := openWriteTarget("", w, d, cfg)
	if err != nil {
		return err
	}
	err = cfg.enc().Encode(t.stream, v)
	if cerr := t.Close(); err == nil {
		err = cerr
	}
	return err
}

// Marshal serializes v to a byte slice under the given concrete
// scheme. It is SaveWriter against an in-memory buffer.
func Marshal(v any, scheme Scheme, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := SaveWriter(v, &buf, scheme, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
