package mesh

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInt, "integer"},
		{KindFloat, "float"},
		{KindBool, "boolean"},
		{KindInvalid, "invalid"},
		{Kind(42), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"integer", KindInt, true},
		{"float", KindFloat, true},
		{"boolean", KindBool, true},
		{"", KindInvalid, false},
		{"complex", KindInvalid, false},
		{"Integer", KindInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseKind(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("parseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWiden(t *testing.T) {
	tests := []struct {
		name string
		a, b Kind
		want Kind
		ok   bool
	}{
		{"int int", KindInt, KindInt, KindInt, true},
		{"float float", KindFloat, KindFloat, KindFloat, true},
		{"bool bool", KindBool, KindBool, KindBool, true},
		{"int float", KindInt, KindFloat, KindFloat, true},
		{"float int", KindFloat, KindInt, KindFloat, true},
		{"int bool", KindInt, KindBool, KindInvalid, false},
		{"bool float", KindBool, KindFloat, KindInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := widen(tt.a, tt.b)
			if got != tt.want || ok != tt.ok {
				t.Errorf("widen(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestArrayShapeValidation(t *testing.T) {
	if _, err := NewFloatArray("", 1, []float64{1}); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewFloatArray("a", 0, []float64{1}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewFloatArray("a", 3, []float64{1, 2}); err == nil {
		t.Error("expected error for values not dividing into tuples")
	}

	a, err := NewFloatArray("a", 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewFloatArray failed: %v", err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
	if a.Kind() != KindFloat {
		t.Errorf("Kind() = %v, want %v", a.Kind(), KindFloat)
	}
}

func TestArrayConvert(t *testing.T) {
	a := &AttributeArray{name: "a", width: 1, kind: KindInt, ints: []int64{1, -2, 3}}

	f, err := a.convert(KindFloat)
	if err != nil {
		t.Fatalf("convert to float failed: %v", err)
	}
	want := []float64{1, -2, 3}
	for i, v := range f.Floats() {
		if v != want[i] {
			t.Errorf("value %d: got %v, want %v", i, v, want[i])
		}
	}

	if _, err := a.convert(KindBool); err == nil {
		t.Error("expected error converting integer to boolean")
	}

	same, err := a.convert(KindInt)
	if err != nil {
		t.Fatalf("identity convert failed: %v", err)
	}
	if same != a {
		t.Error("identity convert should return the same array")
	}
}
