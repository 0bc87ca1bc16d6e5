package validation

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	numericRe = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+$`)
	intRe     = regexp.MustCompile(`^[-+]?[0-9]+$`)

	validate = validator.New()
)

// NotEmpty fails on missing, null and empty-string values.
func NotEmpty(msg string) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		return stringify(v) != ""
	}}
}

// IsString requires a JSON string.
func IsString(msg string) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		_, ok := v.(string)
		return ok
	}}
}

// IsNumeric accepts numbers and numeric strings ("12", "-3.5", ".5").
func IsNumeric(msg string) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		return numericRe.MatchString(stringify(v))
	}}
}

// Positive requires the value to coerce to a number strictly greater than zero.
func Positive(msg string) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		return toNumber(v) > 0
	}}
}

// IsBoolean accepts true, false and their "1"/"0" spellings.
func IsBoolean(msg string) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		switch stringify(v) {
		case "true", "false", "1", "0":
			return true
		}
		return false
	}}
}

// IsIn requires the value to be one of allowed. Allowed values must not
// contain spaces.
func IsIn(msg string, allowed ...string) Rule {
	tag := "oneof=" + strings.Join(allowed, " ")
	return Rule{Msg: msg, Check: func(v any) bool {
		return validate.Var(stringify(v), tag) == nil
	}}
}

// IsInt requires an integer.
func IsInt(msg string) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		return intRe.MatchString(stringify(v))
	}}
}

// IsIntMin requires an integer greater than or equal to min.
func IsIntMin(msg string, min int64) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		s := stringify(v)
		if !intRe.MatchString(s) {
			return false
		}
		n, err := strconv.ParseInt(s, 10, 64)
		return err == nil && n >= min
	}}
}

// IsURL requires an absolute URL.
func IsURL(msg string) Rule {
	return Rule{Msg: msg, Check: isURL}
}

// IsURLList requires an array whose items are all absolute URLs.
func IsURLList(msg string) Rule {
	return Rule{Msg: msg, Check: func(v any) bool {
		items, ok := v.([]any)
		if !ok {
			return false
		}
		for _, it := range items {
			if _, isStr := it.(string); !isStr || !isURL(it) {
				return false
			}
		}
		return true
	}}
}

// MaxLength limits the value to n characters.
func MaxLength(msg string, n int) Rule {
	tag := "max=" + strconv.Itoa(n)
	return Rule{Msg: msg, Check: func(v any) bool {
		return validate.Var(stringify(v), tag) == nil
	}}
}

func isURL(v any) bool {
	s := stringify(v)
	if s == "" {
		return false
	}
	return validate.Var(s, "url") == nil
}

// stringify renders a decoded JSON value the way the rules compare it:
// null and missing become "", numbers use their shortest decimal form and
// arrays join their items with commas.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, len(t))
		for i, it := range t {
			parts[i] = stringify(it)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	}
	return ""
}

// toNumber coerces a value to a float, yielding NaN when it has no numeric
// reading.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
