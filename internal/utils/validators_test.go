package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		email string
		want  bool
	}{
		{"learner@example.com", true},
		{"a@b.co", true},
		{"@example.com", false},
		{"learner@", false},
		{"no-at-sign.com", false},
		{"learner@nodot", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.email); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestIsComplexPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes", "Str0ng!pass", true},
		{"too short", "S1!a", false},
		{"no upper", "str0ng!pass", false},
		{"no lower", "STR0NG!PASS", false},
		{"no digit", "Strong!pass", false},
		{"no special", "Str0ngpass", false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsComplexPassword(tc.password); got != tc.want {
				t.Errorf("IsComplexPassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}
