package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "nurse.somchai", "user_01", "a-b-c"}
	invalid := []string{"ab", "", "has space", "สมชาย", "way@too@odd"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:30", "08:30", "16:30", "23:59"}
	invalid := []string{"24:00", "8:3", "08:60", "", "0830"}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	if !IsValidLatitude(13.7563) || !IsValidLongitude(100.5018) {
		t.Error("expected Bangkok coordinates to validate")
	}
	if IsValidLatitude(91) || IsValidLatitude(-90.1) {
		t.Error("expected out-of-range latitude to fail")
	}
	if IsValidLongitude(181) || IsValidLongitude(-180.5) {
		t.Error("expected out-of-range longitude to fail")
	}
}
