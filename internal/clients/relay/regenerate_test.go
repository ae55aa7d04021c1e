package relay

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kör Bänkpress!", "kor bankpress"},
		{"  Hello,   World.  ", "hello world"},
		{"3 set à 8 reps", "3 set a 8 reps"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := NormalizeAnswer(tc.in); got != tc.want {
			t.Fatalf("NormalizeAnswer(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestIsNearDuplicate(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Kör bänkpress imorgon.", "kör bänkpress imorgon", true},
		{"Kör bänkpress.", "Kör bänkpress. Vila sen två dagar och öka vikten.", true},
		{"Kör bänkpress imorgon.", "Vila en dag och kör ben.", false},
		{"", "", false},
		{"something", "", false},
	}
	for _, tc := range cases {
		if got := IsNearDuplicate(tc.a, tc.b); got != tc.want {
			t.Fatalf("IsNearDuplicate(%q, %q): want=%v got=%v", tc.a, tc.b, tc.want, got)
		}
	}
}
