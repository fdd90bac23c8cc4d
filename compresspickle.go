package compresspickle

import (
	"errors"
	"fmt"
	"os"
)

// Scheme identifies a compression strategy applied around the
// serialized payload.
type Scheme string

const (
	// SchemeInfer is a sentinel that asks path-based operations to
	// derive the scheme from the filename extension. It is not a
	// registered scheme and is rejected by the bytes/stream operations.
	SchemeInfer Scheme = "infer"

	SchemeNone   Scheme = "none"
	SchemeGzip   Scheme = "gzip"
	SchemeBzip2  Scheme = "bzip2"
	SchemeLZMA   Scheme = "lzma"
	SchemeZip    Scheme = "zip"
	SchemeZstd   Scheme = "zstd"
	SchemeLZ4    Scheme = "lz4"
	SchemeBrotli Scheme = "brotli"
	SchemeSnappy Scheme = "snappy"
)

var (
	ErrUnknownScheme         = errors.New("compresspickle: unknown compression scheme")
	ErrUnrecognizedExtension = errors.New("compresspickle: unrecognized filename extension")
	ErrInvalidArgument       = errors.New("compresspickle: invalid argument")
	ErrUnsupportedOption     = errors.New("compresspickle: option not supported by scheme")
	ErrNoArchiveMember       = errors.New("compresspickle: archive member not found")
)

// descriptor is the immutable per-scheme entry in the registry.
// The first extension is the canonical one; the rest are accepted
// aliases during inference.
type descriptor struct {
	name       Scheme
	extensions []string
	archive    bool
	hasLevels  bool
	magic      []byte
	writeFlag  int
	readFlag   int
}

const (
	defaultWriteFlag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	defaultReadFlag  = os.O_RDONLY
)

// registry holds every scheme in registration order. Extension
// inference scans this slice front to back, so the first scheme
// claiming an extension wins.
var registry = []*descriptor{
	{
		name: SchemeNone,
		// ".pkl" is what the Python compress_pickle writes for
		// uncompressed payloads; it stays recognized for inference.
		extensions: []string{".bin", ".pkl"},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeGzip,
		extensions: []string{".gz", ".gzip"},
		hasLevels:  true,
		magic:      []byte{0x1f, 0x8b},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeBzip2,
		extensions: []string{".bz2", ".bz"},
		hasLevels:  true,
		magic:      []byte{'B', 'Z', 'h'},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeLZMA,
		extensions: []string{".xz", ".lzma"},
		magic:      []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeZip,
		extensions: []string{".zip"},
		archive:    true,
		magic:      []byte{'P', 'K', 0x03, 0x04},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeZstd,
		extensions: []string{".zst", ".zstd"},
		hasLevels:  true,
		magic:      []byte{0x28, 0xb5, 0x2f, 0xfd},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeLZ4,
		extensions: []string{".lz4"},
		hasLevels:  true,
		magic:      []byte{0x04, 0x22, 0x4d, 0x18},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeBrotli,
		extensions: []string{".br"},
		hasLevels:  true,
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
	{
		name:       SchemeSnappy,
		extensions: []string{".sz", ".snappy"},
		magic:      []byte{0xff, 0x06, 0x00, 0x00, 0x73, 0x4e, 0x61, 0x50, 0x70, 0x59},
		writeFlag:  defaultWriteFlag,
		readFlag:   defaultReadFlag,
	},
}

var byName = func() map[Scheme]*descriptor {
	m := make(map[Scheme]*descriptor, len(registry))
	for _, d := range registry {
		m[d.name] = d
	}
	return m
}()

// lookup resolves a scheme name against the registry.
func lookup(s Scheme) (*descriptor, error) {
	if d, ok := byName[s]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// KnownSchemes returns every registered scheme in registration order.
func KnownSchemes() []Scheme {
	out := make([]Scheme, len(registry))
	for i, d := range registry {
		out[i] = d.name
	}
	return out
}

// IsArchiveScheme reports whether the scheme writes an archive
// container with named members rather than a plain byte stream.
func IsArchiveScheme(s Scheme) bool {
	d, ok := byName[s]
	return ok && d.archive
}
