package compresspickle

import (
	"errors"
	"testing"
)

func TestSchemeForExtension(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		want    Scheme
		wantErr bool
	}{
		{"gzip", ".gz", SchemeGzip, false},
		{"gzip alias", ".gzip", SchemeGzip, false},
		{"bzip2", ".bz2", SchemeBzip2, false},
		{"xz", ".xz", SchemeLZMA, false},
		{"legacy lzma", ".lzma", SchemeLZMA, false},
		{"zip", ".zip", SchemeZip, false},
		{"zstd", ".zst", SchemeZstd, false},
		{"lz4", ".lz4", SchemeLZ4, false},
		{"brotli", ".br", SchemeBrotli, false},
		{"snappy", ".sz", SchemeSnappy, false},
		{"raw", ".bin", SchemeNone, false},
		{"pickle compat", ".pkl", SchemeNone, false},
		{"unknown", ".txt", "", true},
		{"case sensitive", ".GZ", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SchemeForExtension(tt.ext)
			if tt.wantErr {
				if !errors.Is(err, ErrUnrecognizedExtension) {
					t.Errorf("Expected ErrUnrecognizedExtension, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected scheme %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDefaultExtension(t *testing.T) {
	tests := []struct {
		scheme Scheme
		want   string
	}{
		{SchemeNone, ".bin"},
		{SchemeGzip, ".gz"},
		{SchemeBzip2, ".bz2"},
		{SchemeLZMA, ".xz"},
		{SchemeZip, ".zip"},
		{SchemeZstd, ".zst"},
		{SchemeLZ4, ".lz4"},
		{SchemeBrotli, ".br"},
		{SchemeSnappy, ".sz"},
		{SchemeInfer, ""},
		{"sevenzip", ""},
	}
	for _, tt := range tests {
		if got := DefaultExtension(tt.scheme); got != tt.want {
			t.Errorf("DefaultExtension(%q): expected %q, got %q", tt.scheme, tt.want, got)
		}
	}
}

func TestAddExtension(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		scheme Scheme
		want   string
	}{
		{"append to bare name", "model", SchemeGzip, "model.gz"},
		{"keep foreign extension", "model.txt", SchemeGzip, "model.txt.gz"},
		{"already canonical", "model.gz", SchemeGzip, "model.gz"},
		{"replace other scheme", "model.zst", SchemeGzip, "model.gz"},
		{"normalize alias", "model.gzip", SchemeGzip, "model.gz"},
		{"raw scheme", "model", SchemeNone, "model.bin"},
		{"unknown scheme unchanged", "model", "sevenzip", "model"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddExtension(tt.path, tt.scheme); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantPath   string
		wantScheme Scheme
		wantOk     bool
	}{
		{"gzip", "model.gz", "model", SchemeGzip, true},
		{"zip", "dir/state.zip", "dir/state", SchemeZip, true},
		{"raw", "model.bin", "model", SchemeNone, true},
		{"none", "model.txt", "model.txt", "", false},
		{"no extension", "model", "model", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scheme, ok := StripExtension(tt.path)
			if got != tt.wantPath || scheme != tt.wantScheme || ok != tt.wantOk {
				t.Errorf("Expected (%q, %q, %v), got (%q, %q, %v)",
					tt.wantPath, tt.wantScheme, tt.wantOk, got, scheme, ok)
			}
		})
	}
}

func TestHasCompressionExtension(t *testing.T) {
	if !HasCompressionExtension("a/b/c.bz2") {
		t.Error("Expected .bz2 to be recognized")
	}
	if HasCompressionExtension("a/b/c.rar") {
		t.Error("Expected .rar not to be recognized")
	}
}

func TestDetectScheme(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   Scheme
		wantOk bool
	}{
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, SchemeGzip, true},
		{"bzip2", []byte("BZh91AY"), SchemeBzip2, true},
		{"xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00}, SchemeLZMA, true},
		{"zip", []byte{'P', 'K', 0x03, 0x04, 0x14}, SchemeZip, true},
		{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd}, SchemeZstd, true},
		{"lz4", []byte{0x04, 0x22, 0x4d, 0x18}, SchemeLZ4, true},
		{"plain", []byte("plain text"), "", false},
		{"short", []byte{0x1f}, "", false},
		{"empty", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectScheme(tt.data)
			if ok != tt.wantOk {
				t.Errorf("Expected ok=%v, got %v", tt.wantOk, ok)
			}
			if got != tt.want {
				t.Errorf("Expected scheme %q, got %q", tt.want, got)
			}
		})
	}
}
