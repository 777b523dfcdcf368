package answer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

// Value is the canonical answer for one question, tagged by the owning
// question's kind. Values are constructed and consumed only through the
// codec functions in this file, so the rest of the engine never sees the
// loosely-typed wire shapes the backend has accumulated.
//
// Canonical forms per kind:
//   - Text, Radio: string; "" means unanswered
//   - Checkbox:    set of option strings; empty means unanswered
//   - Number:      finite float64, or absent
type Value struct {
	kind    catalog.Kind
	str     string
	options []string
	num     float64
	present bool
}

// Absent returns the unanswered value for the given kind.
func Absent(kind catalog.Kind) Value {
	return Value{kind: kind}
}

// OfString builds a Text or Radio value.
func OfString(kind catalog.Kind, s string) Value {
	return Value{kind: kind, str: s}
}

// OfOptions builds a Checkbox value from the selected options. The
// value keeps its own copy of the slice.
func OfOptions(options []string) Value {
	if options == nil {
		return Value{kind: catalog.KindCheckbox}
	}
	held := make([]string, len(options))
	copy(held, options)
	return Value{kind: catalog.KindCheckbox, options: held}
}

// OfNumber builds a present Number value. Non-finite inputs collapse to
// absent so a Number value, when present, is always finite.
func OfNumber(n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Absent(catalog.KindNumber)
	}
	return Value{kind: catalog.KindNumber, num: n, present: true}
}

// Kind returns the question kind this value belongs to.
func (v Value) Kind() catalog.Kind { return v.kind }

// String returns the text or radio answer ("" when unanswered).
func (v Value) String() string { return v.str }

// Options returns the selected checkbox options. The slice is a copy;
// stored answers change only through the store's setters.
func (v Value) Options() []string {
	if v.options == nil {
		return nil
	}
	out := make([]string, len(v.options))
	copy(out, v.options)
	return out
}

// HasOption reports whether a checkbox option is selected.
func (v Value) HasOption(option string) bool {
	for _, o := range v.options {
		if o == option {
			return true
		}
	}
	return false
}

// Number returns the numeric answer and whether one is present.
func (v Value) Number() (float64, bool) { return v.num, v.present }

// Equal reports whether two values carry the same answer. Checkbox
// selections compare as sets; insertion order is irrelevant.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case catalog.KindCheckbox:
		if len(v.options) != len(o.options) {
			return false
		}
		for _, opt := range v.options {
			if !o.HasOption(opt) {
				return false
			}
		}
		return true
	case catalog.KindNumber:
		return v.present == o.present && (!v.present || v.num == o.num)
	default:
		return v.str == o.str
	}
}

// IsAnswered reports whether the value counts as a valid answer for its
// kind: non-empty string for Text/Radio, at least one option for
// Checkbox, any present number (including 0) for Number.
func IsAnswered(v Value) bool {
	switch v.kind {
	case catalog.KindCheckbox:
		return len(v.options) > 0
	case catalog.KindNumber:
		return v.present
	default:
		return v.str != ""
	}
}

// NormalizeIncoming converts a raw wire value into canonical form. The
// backend's answer shape has drifted across versions (checkboxes as
// comma-joined strings, numbers as strings), so this accepts every shape
// observed historically and resolves anything unexpected to the kind's
// empty value rather than failing — malformed old data must not block
// loading the rest of an assessment.
func NormalizeIncoming(kind catalog.Kind, raw any) Value {
	switch kind {
	case catalog.KindCheckbox:
		return normalizeCheckbox(raw)
	case catalog.KindNumber:
		return normalizeNumber(raw)
	default:
		return OfString(kind, stringify(raw))
	}
}

func normalizeCheckbox(raw any) Value {
	switch t := raw.(type) {
	case []string:
		return OfOptions(t)
	case []any:
		opts := make([]string, 0, len(t))
		for _, e := range t {
			if s := stringify(e); s != "" {
				opts = append(opts, s)
			}
		}
		return OfOptions(opts)
	case string:
		// Legacy rows store checkbox answers comma-joined.
		parts := strings.Split(t, ",")
		opts := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				opts = append(opts, p)
			}
		}
		return OfOptions(opts)
	default:
		return OfOptions(nil)
	}
}

func normalizeNumber(raw any) Value {
	switch t := raw.(type) {
	case float64:
		return OfNumber(t)
	case float32:
		return OfNumber(float64(t))
	case int:
		return OfNumber(float64(t))
	case int64:
		return OfNumber(float64(t))
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Absent(catalog.KindNumber)
		}
		return OfNumber(n)
	case string:
		if t == "" {
			return Absent(catalog.KindNumber)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return Absent(catalog.KindNumber)
		}
		return OfNumber(n)
	default:
		return Absent(catalog.KindNumber)
	}
}

// stringify coerces non-null scalars to string; nil becomes "".
func stringify(raw any) string {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// ToWire converts a canonical value to its submission shape: Checkbox
// always as an array ([] when unanswered), Number as a number ("" when
// unanswered, matching what the backend stores for blank numbers),
// Text/Radio as a string. Normalizing a wire value produced here is a
// no-op round trip.
func ToWire(v Value) any {
	switch v.kind {
	case catalog.KindCheckbox:
		if len(v.options) == 0 {
			return []string{}
		}
		return v.Options()
	case catalog.KindNumber:
		if !v.present {
			return ""
		}
		return v.num
	default:
		return v.str
	}
}
