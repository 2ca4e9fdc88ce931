package palette

import (
	"errors"
	"testing"
)

func TestLookupName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"red", "red", RGB{255, 0, 0}},
		{"case insensitive", "RebeccaPurple", RGB{102, 51, 153}},
		{"trimmed", "  teal  ", RGB{0, 128, 128}},
		{"grey alias", "grey", RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupName(tt.input)
			if err != nil {
				t.Fatalf("LookupName(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("LookupName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupName_NotFound(t *testing.T) {
	_, err := LookupName("not-a-color")
	if err == nil {
		t.Fatal("LookupName(not-a-color) should fail")
	}
	var nameErr *NameNotFoundError
	if !errors.As(err, &nameErr) {
		t.Fatalf("error = %T, want *NameNotFoundError", err)
	}
}

func TestNameOf(t *testing.T) {
	if name, ok := NameOf(RGB{255, 0, 0}); !ok || name != "red" {
		t.Errorf("NameOf(255,0,0) = %q,%v, want red", name, ok)
	}
	// Aliased values resolve to the alphabetically first name.
	if name, _ := NameOf(RGB{0, 255, 255}); name != "aqua" {
		t.Errorf("NameOf(0,255,255) = %q, want aqua", name)
	}
	if _, ok := NameOf(RGB{1, 2, 3}); ok {
		t.Error("NameOf(1,2,3) should report no name")
	}
}

func TestNearestName(t *testing.T) {
	// Exact table hits have zero distance.
	name, dist := NearestName(RGB{255, 0, 0})
	if name != "red" || dist != 0 {
		t.Errorf("NearestName(255,0,0) = %q,%v, want red,0", name, dist)
	}

	// Slightly off red still lands on red, at a positive distance.
	name, dist = NearestName(RGB{250, 5, 5})
	if name != "red" {
		t.Errorf("NearestName(250,5,5) = %q, want red", name)
	}
	if dist <= 0 {
		t.Errorf("NearestName(250,5,5) distance = %v, want > 0", dist)
	}
}

func TestNameTable_Size(t *testing.T) {
	// CSS3 extended keywords plus rebeccapurple.
	if len(cssNames) != 148 {
		t.Errorf("name table has %d entries, want 148", len(cssNames))
	}
	if len(sortedNames) != len(cssNames) {
		t.Errorf("sortedNames has %d entries, want %d", len(sortedNames), len(cssNames))
	}
}
