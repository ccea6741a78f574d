package js8

import "testing"

func TestNormalizeForAlphabet(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"k1abc", "K1ABC"},
		{"café", "CAFE"},   // NFKD strips the combining accent, then filters it
		{"hello world!", "HELLOWORLD"}, // space and '!' aren't in Alphabet
		{"k1abc-k2xyz", "K1ABC-K2XYZ"},
	}
	for _, tc := range tests {
		got := NormalizeForAlphabet(tc.in)
		if got != tc.want {
			t.Errorf("NormalizeForAlphabet(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadPayload(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"K1ABC", "K1ABC0000000"[:12]},
		{"", "000000000000"},
		{"ABCDEFGHIJKLMNOP", "ABCDEFGHIJKL"},
	}
	for _, tc := range tests {
		got := PadPayload(tc.in)
		if len(got) != 12 {
			t.Errorf("PadPayload(%q) has length %d, want 12", tc.in, len(got))
		}
		if got != tc.want {
			t.Errorf("PadPayload(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
