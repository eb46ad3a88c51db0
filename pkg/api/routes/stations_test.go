package routes

import "testing"

func TestParseQuarters(t *testing.T) {
	quarters, err := parseQuarters("1, 3,4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quarters) != 3 || quarters[0] != 1 || quarters[1] != 3 || quarters[2] != 4 {
		t.Errorf("got %v, want [1 3 4]", quarters)
	}

	if quarters, err := parseQuarters(""); err != nil || quarters != nil {
		t.Errorf("empty input: got %v, %v; want nil, nil", quarters, err)
	}

	for _, raw := range []string{"x", "0", "5", "1,,2"} {
		if _, err := parseQuarters(raw); err == nil {
			t.Errorf("parseQuarters(%q): expected an error", raw)
		}
	}
}
