package compresspickle

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// ExtensionPolicy controls what happens when inference meets a
// filename extension that no registered scheme claims.
type ExtensionPolicy int

const (
	// PolicyRaise fails the call with ErrUnrecognizedExtension.
	PolicyRaise ExtensionPolicy = iota
	// PolicyIgnore silently falls back to SchemeNone.
	PolicyIgnore
	// PolicyWarn falls back to SchemeNone and logs a single warning.
	PolicyWarn
)

// DefaultExtension returns the canonical filename extension for a
// scheme, or "" if the scheme is not registered.
func DefaultExtension(s Scheme) string {
	if d, ok := byName[s]; ok {
		return d.extensions[0]
	}
	return ""
}

// SchemeForExtension maps a filename extension (including the dot)
// to the scheme that claims it. Matching is case-sensitive and exact;
// schemes are scanned in registration order, first match wins.
func SchemeForExtension(ext string) (Scheme, error) {
	for _, d := range registry {
		for _, e := range d.extensions {
			if e == ext {
				return d.name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedExtension, ext)
}

// HasCompressionExtension reports whether the filename ends in an
// extension claimed by any registered scheme.
func HasCompressionExtension(name string) bool {
	_, err := SchemeForExtension(filepath.Ext(name))
	return err == nil
}

// AddExtension rewrites name to carry the scheme's canonical
// extension. A recognized extension already on the name is replaced;
// anything else is kept and the canonical extension appended.
func AddExtension(name string, s Scheme) string {
	ext := DefaultExtension(s)
	if ext == "" {
		return name
	}
	if cur := filepath.Ext(name); cur != "" {
		if _, err := SchemeForExtension(cur); err == nil {
			name = strings.TrimSuffix(name, cur)
		}
	}
	return name + ext
}

// StripExtension removes a recognized compression extension from the
// filename, returning the stripped name, the scheme that claimed the
// extension, and whether anything was stripped.
func StripExtension(name string) (string, Scheme, bool) {
	ext := filepath.Ext(name)
	if s, err := SchemeForExtension(ext); err == nil {
		return strings.TrimSuffix(name, ext), s, true
	}
	return name, "", false
}

// DetectScheme inspects the leading bytes of data for a known
// compression magic number. Schemes without a reliable signature
// (none, brotli) are never reported.
func DetectScheme(data []byte) (Scheme, bool) {
	for _, d := range registry {
		if d.magic == nil {
			continue
		}
		if len(data) >= len(d.magic) && bytes.Equal(data[:len(d.magic)], d.magic) {
			return d.name, true
		}
	}
	return "", false
}

// resolvePath turns a requested scheme (possibly SchemeInfer) and a
// filesystem path into the effective path and scheme descriptor.
//
// A concrete scheme is used as-is; the path is rewritten to the
// canonical extension unless the caller disabled rewriting. Inference
// reverse-looks-up the path's extension and applies the configured
// policy on a miss.
func resolvePath(path string, s Scheme, cfg *config) (string, *descriptor, error) {
	if s != SchemeInfer {
		d, err := lookup(s)
		if err != nil {
			return "", nil, err
		}
		if cfg.rewriteExt {
			path = AddExtension(path, s)
		}
		return path, d, nil
	}

	ext := filepath.Ext(path)
	inferred, err := SchemeForExtension(ext)
	if err != nil {
		switch cfg.policy {
		case PolicyIgnore:
			inferred = SchemeNone
		case PolicyWarn:
			cfg.log().Warn("no compression scheme for extension, storing uncompressed",
				slog.String("path", path),
				slog.String("extension", ext))
			inferred = SchemeNone
		default:
			return "", nil, err
		}
	}
	d, err := lookup(inferred)
	if err != nil {
		return "", nil, err
	}
	return path, d, nil
}
