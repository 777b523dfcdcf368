package answer

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
)

func TestNormalizeIncomingCheckbox(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{"string slice", []string{"a", "b"}, []string{"a", "b"}},
		{"any slice", []any{"a", "b"}, []string{"a", "b"}},
		{"legacy comma string", "a,b,c", []string{"a", "b", "c"}},
		{"comma string with spaces", "a, b , c", []string{"a", "b", "c"}},
		{"trailing comma", "a,b,", []string{"a", "b"}},
		{"empty string", "", []string{}},
		{"nil", nil, []string{}},
		{"number", 3.0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NormalizeIncoming(catalog.KindCheckbox, tt.raw)
			got := v.Options()
			if len(got) != len(tt.want) {
				t.Fatalf("options = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("options = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestNormalizeIncomingNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    float64
		present bool
	}{
		{"float", 42.5, 42.5, true},
		{"int", 7, 7, true},
		{"zero", 0.0, 0, true},
		{"json number", json.Number("12.25"), 12.25, true},
		{"numeric string", "3.5", 3.5, true},
		{"padded numeric string", " 8 ", 8, true},
		{"empty string", "", 0, false},
		{"garbage string", "abc", 0, false},
		{"nil", nil, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NormalizeIncoming(catalog.KindNumber, tt.raw)
			n, ok := v.Number()
			if ok != tt.present {
				t.Fatalf("present = %v, want %v", ok, tt.present)
			}
			if ok && n != tt.want {
				t.Fatalf("number = %v, want %v", n, tt.want)
			}
		})
	}
}

func TestNormalizeIncomingText(t *testing.T) {
	tests := []struct {
		name string
		kind catalog.Kind
		raw  any
		want string
	}{
		{"plain string", catalog.KindText, "hello", "hello"},
		{"radio string", catalog.KindRadio, "Yes", "Yes"},
		{"nil becomes empty", catalog.KindText, nil, ""},
		{"number coerced", catalog.KindText, 4.0, "4"},
		{"bool coerced", catalog.KindText, true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NormalizeIncoming(tt.kind, tt.raw)
			if v.String() != tt.want {
				t.Fatalf("string = %q, want %q", v.String(), tt.want)
			}
		})
	}
}

// Normalizing a value's own wire form must reproduce the value.
func TestWireRoundTrip(t *testing.T) {
	values := []Value{
		OfString(catalog.KindText, "free text"),
		OfString(catalog.KindText, ""),
		OfString(catalog.KindRadio, "Yes"),
		OfOptions([]string{"a", "b"}),
		OfOptions(nil),
		OfNumber(0),
		OfNumber(12.5),
		Absent(catalog.KindNumber),
	}

	for _, v := range values {
		got := NormalizeIncoming(v.Kind(), ToWire(v))
		if !got.Equal(v) {
			t.Errorf("round trip of %+v produced %+v", v, got)
		}
	}
}

func TestToWireEmptyForms(t *testing.T) {
	if w := ToWire(Absent(catalog.KindCheckbox)); !reflect.DeepEqual(w, []string{}) {
		t.Errorf("checkbox empty wire = %#v, want []string{}", w)
	}
	if w := ToWire(Absent(catalog.KindNumber)); w != "" {
		t.Errorf("number empty wire = %#v, want \"\"", w)
	}
	if w := ToWire(Absent(catalog.KindText)); w != "" {
		t.Errorf("text empty wire = %#v, want \"\"", w)
	}
}

func TestIsAnswered(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"text filled", OfString(catalog.KindText, "x"), true},
		{"text empty", OfString(catalog.KindText, ""), false},
		{"radio picked", OfString(catalog.KindRadio, "Yes"), true},
		{"checkbox one", OfOptions([]string{"a"}), true},
		{"checkbox none", OfOptions(nil), false},
		{"number zero counts", OfNumber(0), true},
		{"number negative counts", OfNumber(-1), true},
		{"number absent", Absent(catalog.KindNumber), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAnswered(tt.v); got != tt.want {
				t.Fatalf("IsAnswered = %v, want %v", got, tt.want)
			}
		})
	}
}

// Mutating anything a Value hands out (or was built from) must not
// change the value itself.
func TestCheckboxSlicesDoNotAlias(t *testing.T) {
	seed := []string{"a", "b"}
	v := OfOptions(seed)

	seed[0] = "mutated"
	if v.HasOption("mutated") || !v.HasOption("a") {
		t.Error("value aliased the constructor's slice")
	}

	opts := v.Options()
	opts[0] = "mutated"
	if v.HasOption("mutated") || !v.HasOption("a") {
		t.Error("value aliased the slice returned by Options")
	}

	wire := ToWire(v).([]string)
	wire[1] = "mutated"
	if v.HasOption("mutated") || !v.HasOption("b") {
		t.Error("value aliased the slice returned by ToWire")
	}
}

func TestEqualChecksSetSemantics(t *testing.T) {
	a := OfOptions([]string{"x", "y"})
	b := OfOptions([]string{"y", "x"})
	if !a.Equal(b) {
		t.Error("checkbox values with same options in different order should be equal")
	}

	c := OfOptions([]string{"x"})
	if a.Equal(c) {
		t.Error("values with different option counts should not be equal")
	}

	if OfString(catalog.KindText, "x").Equal(OfString(catalog.KindRadio, "x")) {
		t.Error("values of different kinds should not be equal")
	}
}
