package compresspickle

import (
	"errors"
	"os"
	"testing"
)

func TestKnownSchemes(t *testing.T) {
	schemes := KnownSchemes()
	want := []Scheme{
		SchemeNone, SchemeGzip, SchemeBzip2, SchemeLZMA, SchemeZip,
		SchemeZstd, SchemeLZ4, SchemeBrotli, SchemeSnappy,
	}
	if len(schemes) != len(want) {
		t.Fatalf("Expected %d schemes, got %d", len(want), len(schemes))
	}
	for i, s := range want {
		if schemes[i] != s {
			t.Errorf("Expected scheme %q at position %d, got %q", s, i, schemes[i])
		}
	}
}

func TestLookupUnknownScheme(t *testing.T) {
	if _, err := lookup("sevenzip"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("Expected ErrUnknownScheme, got %v", err)
	}
	if _, err := lookup(SchemeInfer); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("Expected ErrUnknownScheme for the infer sentinel, got %v", err)
	}
}

func TestIsArchiveScheme(t *testing.T) {
	if !IsArchiveScheme(SchemeZip) {
		t.Error("Expected zip to be an archive scheme")
	}
	for _, s := range []Scheme{SchemeNone, SchemeGzip, SchemeZstd, SchemeSnappy} {
		if IsArchiveScheme(s) {
			t.Errorf("Expected %q not to be an archive scheme", s)
		}
	}
}

func TestDescriptorDefaults(t *testing.T) {
	for _, d := range registry {
		if len(d.extensions) == 0 {
			t.Errorf("Scheme %q has no extensions", d.name)
		}
		if d.writeFlag != os.O_WRONLY|os.O_CREATE|os.O_TRUNC {
			t.Errorf("Scheme %q has unexpected default write flags %#x", d.name, d.writeFlag)
		}
		if d.readFlag != os.O_RDONLY {
			t.Errorf("Scheme %q has unexpected default read flags %#x", d.name, d.readFlag)
		}
	}
}
