package cgf

import (
	"fmt"
	"testing"
)

// TestValidEntryName implements test cases
func TestValidEntryName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain name", input: "TITLE.IMG", valid: true},
		{name: "name with spaces", input: "EVENT CG 01.IMG", valid: true},
		{name: "empty name", input: "", valid: false},
		{name: "forward slash", input: "a/b.IMG", valid: false},
		{name: "backslash", input: `a\b.IMG`, valid: false},
		{name: "colon", input: "C:EV.IMG", valid: false},
		{name: "asterisk", input: "EV*.IMG", valid: false},
		{name: "question mark", input: "EV?.IMG", valid: false},
		{name: "double quote", input: `EV".IMG`, valid: false},
		{name: "angle brackets", input: "<EV>.IMG", valid: false},
		{name: "pipe", input: "EV|01.IMG", valid: false},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("tc %d", i), func(t *testing.T) {
			if got := validEntryName(tc.input); got != tc.valid {
				t.Errorf("test case %d failed: %s", i, tc.name)
			}
		})
	}
}

// TestKindString implements test cases
func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{kind: KindGeneric, want: "generic"},
		{kind: KindImage, want: "image"},
		{kind: Kind(42), want: "unknown"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}
