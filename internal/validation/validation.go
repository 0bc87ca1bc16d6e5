// Package validation evaluates declarative per-field rules against a request's
// path parameters and JSON body.
//
// A Schema is an ordered list of fields and every field holds an ordered list
// of rules. Validate runs every rule of every field and reports one FieldError
// per failing rule, in declaration order, so a single field can contribute
// several entries. The package has no HTTP dependencies; the gin side lives in
// internal/middleware.
package validation

import "strings"

// Location tells where a validated value was read from.
type Location string

const (
	LocationParams Location = "params"
	LocationBody   Location = "body"
)

// FieldError is a single rule violation. Only Msg is guaranteed to be set;
// errors raised outside a Schema (e.g. the price range check) carry Msg only.
type FieldError struct {
	Type     string   `json:"type,omitempty"`
	Value    any      `json:"value,omitempty"`
	Msg      string   `json:"msg"`
	Path     string   `json:"path,omitempty"`
	Location Location `json:"location,omitempty"`
}

// Message builds a FieldError that is not tied to a field.
func Message(msg string) FieldError {
	return FieldError{Msg: msg}
}

// Check reports whether a raw value satisfies a rule. The value is nil when the
// key is missing or explicitly null.
type Check func(v any) bool

// Rule pairs a check with the message reported when it fails.
type Rule struct {
	Check Check
	Msg   string
}

// Field describes the rules for one named input.
type Field struct {
	Location Location
	Name     string
	Rules    []Rule

	optional bool
	trim     bool
}

// Body declares rules for a JSON body key.
func Body(name string, rules ...Rule) Field {
	return Field{Location: LocationBody, Name: name, Rules: rules}
}

// Param declares rules for a path parameter.
func Param(name string, rules ...Rule) Field {
	return Field{Location: LocationParams, Name: name, Rules: rules}
}

// Optional skips every rule of the field when the key is absent.
// An explicit null is still validated.
func (f Field) Optional() Field {
	f.optional = true
	return f
}

// Trim strips surrounding whitespace from string values before the rules run.
// The trimmed value replaces the raw one in the Input.
func (f Field) Trim() Field {
	f.trim = true
	return f
}

// Schema is the ordered rule set of one operation.
type Schema []Field

// Validate runs the schema against in. An empty result means the request may
// proceed.
func (s Schema) Validate(in Input) []FieldError {
	var errs []FieldError
	for _, f := range s {
		v, present := in.lookup(f.Location, f.Name)
		if f.optional && !present {
			continue
		}
		if f.trim {
			if str, ok := v.(string); ok {
				v = strings.TrimSpace(str)
				in.set(f.Location, f.Name, v)
			}
		}
		for _, r := range f.Rules {
			if r.Check(v) {
				continue
			}
			errs = append(errs, FieldError{
				Type:     "field",
				Value:    v,
				Msg:      r.Msg,
				Path:     f.Name,
				Location: f.Location,
			})
		}
	}
	return errs
}
