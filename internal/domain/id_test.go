package domain

import "testing"

func TestIDsEqual(t *testing.T) {
	cases := []struct {
		a, b ID
		want bool
	}{
		{"42", "42", true},
		{"042", "42", true},
		{"42", "0042", true},
		{"0", "000", true},
		{"42", "43", false},
		{"42", "", false},
		{"", "", true},
		{"abc", "abc", true},
		{"abc", "ABC", false},
		{"07a", "7a", false}, // not purely numeric, no zero-stripping
		{" 42", "42", true},
	}
	for _, c := range cases {
		if got := IDsEqual(c.a, c.b); got != c.want {
			t.Errorf("IDsEqual(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
	for _, c := range cases {
		if got := IDsEqual(c.b, c.a); got != c.want {
			t.Errorf("IDsEqual(%q, %q) = %v, want %v", c.b, c.a, got, c.want)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a.IsZero() || b.IsZero() {
		t.Fatal("NewID returned a zero ID")
	}
	if a == b {
		t.Fatalf("NewID returned duplicate %q", a)
	}
}
