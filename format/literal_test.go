package format

import "testing"

func TestFormatInt(t *testing.T) {
	cases := map[string]string{
		"1000":        "1000",
		"10000":       "10_000",
		"-10000":      "-10_000",
		"-99999":      "-99_999",
		"1_0_0_0_000": "1_000_000",
		"0x1F":        "0x1F",
		"0b10":        "0b10",
		"0o17":        "0o17",
	}
	for in, want := range cases {
		if got := formatInt(in); got != want {
			t.Errorf("formatInt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[string]string{
		"1.2300":  "1.23",
		"1.":      "1.0",
		"10000.5": "10_000.5",
	}
	for in, want := range cases {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%q) = %q, want %q", in, got, want)
		}
	}
}
