package entity

import "testing"

func TestJSONValue(t *testing.T) {
	tests := []struct {
		name string
		in   JSON
		want interface{}
	}{
		{name: "nil", in: nil, want: nil},
		{name: "empty", in: JSON{}, want: "{}"},
		{name: "populated", in: JSON{"mon": "09:00"}, want: `{"mon":"09:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Value()
			if err != nil {
				t.Fatalf("Value: %v", err)
			}
			if b, ok := got.([]byte); ok {
				got = string(b)
			}
			if got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONScanEmptyObject(t *testing.T) {
	var j JSON
	if err := j.Scan([]byte("{}")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if j == nil || len(j) != 0 {
		t.Errorf("expected a non-nil empty map, got %#v", j)
	}

	if err := j.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if j != nil {
		t.Errorf("expected nil after scanning NULL, got %#v", j)
	}
}
