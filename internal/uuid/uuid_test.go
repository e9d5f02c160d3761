// Package uuid provides unit tests for UUID generation and validation.
package uuid

import "testing"

func TestNewGeneratesValidV4(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if !IsValid(id) {
			t.Fatalf("New produced invalid UUID v4: %s", id)
		}
		if seen[id] {
			t.Fatalf("New produced duplicate UUID: %s", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid v4", "6ba7b810-9dad-41d1-80b4-00c04fd430c8", true},
		{"uppercase hex", "6BA7B810-9DAD-41D1-80B4-00C04FD430C8", true},
		{"wrong version", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"wrong variant", "6ba7b810-9dad-41d1-70b4-00c04fd430c8", false},
		{"missing dashes", "6ba7b8109dad41d180b400c04fd430c8", false},
		{"too short", "6ba7b810-9dad-41d1-80b4", false},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.input); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(New()); err != nil {
		t.Errorf("Validate rejected a generated UUID: %v", err)
	}
	if err := Validate("bogus"); err == nil {
		t.Error("Validate accepted a bogus string")
	}
}
