package compresspickle

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	pickle "github.com/kisielk/og-rek"
)

// Codec turns a Go value into bytes on a stream and back. The facade
// is agnostic to the wire format; the codec used to save a value must
// be the one used to load it.
type Codec interface {
	// Name identifies the codec ("cbor", "gob", "json", "pickle").
	Name() string
	// Encode writes the serialized form of v to w.
	Encode(w io.Writer, v any) error
	// Decode reads one serialized value from r into the pointer v.
	Decode(r io.Reader, v any) error
}

// cborEnc is configured with Core Deterministic Encoding: sorted map
// keys, smallest integer encoding, no indefinite-length items, so the
// same value always produces identical bytes.
var cborEnc cbor.EncMode

// cborDec accepts standard CBOR. Any-typed targets decode maps as
// map[string]any rather than the CBOR default map[any]any, which is
// what the rest of the Go ecosystem expects.
var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("compresspickle: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("compresspickle: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBORCodec is the default codec. CBOR is compact, schema-free and
// decodes into caller-typed values.
type CBORCodec struct{}

func (CBORCodec) Name() string { return "cbor" }

func (CBORCodec) Encode(w io.Writer, v any) error {
	return cborEnc.NewEncoder(w).Encode(v)
}

func (CBORCodec) Decode(r io.Reader, v any) error {
	return cborDec.NewDecoder(r).Decode(v)
}

// GobCodec serializes with encoding/gob. Go-only payloads; both ends
// must agree on the types involved.
type GobCodec struct{}

func (GobCodec) Name() string { return "gob" }

func (GobCodec) Encode(w io.Writer, v any) error {
	return gob.NewEncoder(w).Encode(v)
}

func (GobCodec) Decode(r io.Reader, v any) error {
	return gob.NewDecoder(r).Decode(v)
}

// JSONCodec serializes with encoding/json for text interchange.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func (JSONCodec) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// PickleCodec reads and writes Python pickle streams, for artifacts
// shared with the Python compress_pickle package. Python dicts decode
// as map[any]any, ints as int64; see the og-rek type mapping.
type PickleCodec struct{}

func (PickleCodec) Name() string { return "pickle" }

func (PickleCodec) Encode(w io.Writer, v any) error {
	return pickle.NewEncoder(w).Encode(v)
}

func (PickleCodec) Decode(r io.Reader, v any) error {
	obj, err := pickle.NewDecoder(r).Decode()
	if err != nil {
		return err
	}
	return assign(v, obj)
}

// assign stores the decoded value into the pointer target, converting
// when the types differ but are compatible.
func assign(target any, value any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer", ErrInvalidArgument)
	}
	elem := rv.Elem()
	if value == nil {
		elem.SetZero()
		return nil
	}
	val := reflect.ValueOf(value)
	switch {
	case val.Type().AssignableTo(elem.Type()):
		elem.Set(val)
	case val.Type().ConvertibleTo(elem.Type()):
		elem.Set(val.Convert(elem.Type()))
	default:
		return fmt.Errorf("%w: cannot store decoded %s into %s", ErrInvalidArgument, val.Type(), elem.Type())
	}
	return nil
}
