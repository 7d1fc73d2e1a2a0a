package duration

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
)

// ErrInvalidInput is matched by every error Convert returns.
var ErrInvalidInput = errors.New("invalid input")

var errUnsupportedValue = errors.New("value is not a string or number")

// InputError reports a value Convert could not handle. It unwraps to both
// ErrInvalidInput and the underlying cause, so errors.Is(err, ErrTooLong)
// still holds for an overlong string.
type InputError struct {
	Value any   // the value passed to Convert
	Err   error // underlying cause
}

func (e *InputError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return "an unknown error has occurred"
	}
	return e.Err.Error() + ": value=" + serialize(e.Value)
}

func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// Kind tells which field of a Result is set.
type Kind uint8

const (
	// KindMillis is the result of parsing a string.
	KindMillis Kind = iota + 1
	// KindText is the result of formatting a number.
	KindText
)

// Result is the output of Convert: a millisecond count for string input,
// formatted text for numeric input.
type Result struct {
	Kind   Kind
	Millis float64
	Text   string
}

// String returns the text, or the millisecond count in plain notation.
func (r Result) String() string {
	if r.Kind == KindText {
		return r.Text
	}
	return formatNumber(r.Millis)
}

// MarshalJSON encodes the result as a JSON string or number. Non-finite
// millisecond counts, including the NaN of an unmatched string, encode as null.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Kind == KindText {
		return json.Marshal(r.Text)
	}
	if math.IsNaN(r.Millis) || math.IsInf(r.Millis, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(r.Millis)
}

// Convert parses value when it is a non-empty string and formats it when it
// is a finite number. Any Go integer or float type and json.Number count as
// numbers; opts applies to numbers only.
//
//	Convert("2h", Options{})            // Result{Kind: KindMillis, Millis: 7200000}
//	Convert(7200000, Options{})         // Result{Kind: KindText, Text: "2h"}
//	Convert(7200000, Options{Long: true}) // "2 hours"
//
// Everything else, including "", NaN, nil and named types like
// time.Duration, returns an *InputError.
func Convert(value any, opts Options) (Result, error) {
	if s, ok := value.(string); ok && s != "" {
		ms, err := Parse(s)
		if err != nil {
			return Result{}, &InputError{Value: value, Err: err}
		}
		return Result{Kind: KindMillis, Millis: ms}, nil
	}

	if f, ok := toFloat(value); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Result{Kind: KindText, Text: Format(f, opts)}, nil
	}

	return Result{}, &InputError{Value: value, Err: errUnsupportedValue}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// serialize renders v as JSON for error messages. Values JSON cannot
// represent (NaN, channels, functions) render as null.
func serialize(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
