package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedBody is returned by DecodeBody when the payload is not a JSON object.
var ErrMalformedBody = errors.New("el cuerpo de la solicitud no es un objeto JSON")

// Input is the raw material a Schema validates: path parameters plus the JSON
// body decoded into generic values (numbers kept as json.Number).
type Input struct {
	Params map[string]string
	Body   map[string]any
}

// DecodeBody parses raw into a JSON object. An empty payload yields an empty
// object so that required-field rules report the missing keys.
func DecodeBody(raw []byte) (map[string]any, error) {
	body := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if body == nil {
		return nil, ErrMalformedBody
	}
	return body, nil
}

func (in Input) lookup(loc Location, name string) (any, bool) {
	switch loc {
	case LocationParams:
		v, ok := in.Params[name]
		if !ok {
			return nil, false
		}
		return v, true
	default:
		v, ok := in.Body[name]
		return v, ok
	}
}

func (in Input) set(loc Location, name string, v any) {
	switch loc {
	case LocationParams:
		if s, ok := v.(string); ok && in.Params != nil {
			in.Params[name] = s
		}
	default:
		if in.Body != nil {
			in.Body[name] = v
		}
	}
}

// Has reports whether the body carries key, even with a null value.
func (in Input) Has(key string) bool {
	_, ok := in.Body[key]
	return ok
}

// Param returns a path parameter.
func (in Input) Param(name string) string {
	return in.Params[name]
}

// String returns the string form of a body value.
func (in Input) String(key string) string {
	return stringify(in.Body[key])
}

// StringPtr is like String but returns nil for missing and null values.
func (in Input) StringPtr(key string) *string {
	v, ok := in.Body[key]
	if !ok || v == nil {
		return nil
	}
	s := stringify(v)
	return &s
}

// Decimal reads a numeric body value.
func (in Input) Decimal(key string) (decimal.Decimal, error) {
	s := strings.TrimPrefix(strings.TrimSpace(stringify(in.Body[key])), "+")
	d, err := decimal.NewFromString(s)
	if err == nil {
		return d, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return decimal.Zero, fmt.Errorf("%s: valor numérico inválido %q", key, s)
	}
	return decimal.NewFromFloat(f), nil
}

// Int reads an integer body value.
func (in Input) Int(key string) (int, error) {
	s := stringify(in.Body[key])
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: entero inválido %q", key, s)
	}
	return n, nil
}

// Uint reads a non-negative integer body value, such as a record id.
func (in Input) Uint(key string) (uint, error) {
	n, err := in.Int(key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: identificador negativo %d", key, n)
	}
	return uint(n), nil
}

// Bool reads a boolean body value accepting the spellings IsBoolean accepts.
func (in Input) Bool(key string) (bool, error) {
	switch s := stringify(in.Body[key]); s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%s: booleano inválido %q", key, s)
	}
}

// Strings reads an array of strings. Non-string items are skipped.
func (in Input) Strings(key string) []string {
	items, ok := in.Body[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ParamUint reads a path parameter as a record id.
func (in Input) ParamUint(name string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(in.Params[name], "+"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: identificador inválido %q", name, in.Params[name])
	}
	return uint(n), nil
}
