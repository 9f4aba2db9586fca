package scoring

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "The Quick BROWN Fox", "the quick brown fox"},
		{"punctuation stripped", "Hello, world! (really?)", "hello world really"},
		{"apostrophe variants", "don’t don`t don't", "don't don't don't"},
		{"diacritics stripped", "café crème brûlée", "cafe creme brulee"},
		{"vietnamese accents", "tiếng Việt", "tieng viet"},
		{"whitespace collapsed", "  a \t b \n c  ", "a b c"},
		{"digits kept", "room 101", "room 101"},
		{"emoji replaced", "good job \U0001F389!", "good job"},
		{"empty", "", ""},
		{"only symbols", "!!! ???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"The Quick BROWN Fox!",
		"don’t stop",
		"tiếng Việt rất hay",
		"  spaced   out  ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
