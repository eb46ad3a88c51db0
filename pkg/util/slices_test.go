package util

import "testing"

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6}
	InPlaceFilter(&values, func(v int) bool { return v%2 == 0 })

	if len(values) != 3 || values[0] != 2 || values[1] != 4 || values[2] != 6 {
		t.Errorf("got %v, want [2 4 6]", values)
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"b": 1, "a": 2, "c": 3})

	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("got %v, want [a b c]", keys)
	}
}
