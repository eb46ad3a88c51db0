package util

import "testing"

func TestNormalizeString(t *testing.T) {
	testCases := []struct {
		input  string
		expect string
	}{
		{"", ""},
		{"Chicago", "Chicago"},
		{"  Chicago  ", "Chicago"},
		{"Chicago   Union   Station", "Chicago Union Station"},
		{"\tNew\nYork ", "New York"},
	}

	for _, testCase := range testCases {
		if got := NormalizeString(testCase.input); got != testCase.expect {
			t.Errorf("NormalizeString(%q) = %q, want %q", testCase.input, got, testCase.expect)
		}
	}
}

func TestRemoveDuplicateStrings(t *testing.T) {
	got := RemoveDuplicateStrings([]string{"a", "b", "a", "", "c"}, []string{"c"})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}
