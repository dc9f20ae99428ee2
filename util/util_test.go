package util

import (
	"reflect"
	"testing"
)

func TestPtrDeref(t *testing.T) {
	p := Ptr(42)
	if *p != 42 {
		t.Errorf("expected 42, got %d", *p)
	}
	if got := Deref(p); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := Deref[string](nil); got != "" {
		t.Errorf("expected zero value, got %q", got)
	}
}

func TestKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	keys := Keys(m)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	if got := SortedKeys(m); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("expected sorted keys, got %v", got)
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		s    string
		list []string
		want bool
	}{
		{"a", []string{"a", "b", "c"}, true},
		{"d", []string{"a", "b", "c"}, false},
		{"", []string{"a", ""}, true},
		{"x", []string{}, false},
	}
	for _, tc := range tests {
		if got := Contains(tc.list, tc.s); got != tc.want {
			t.Errorf("Contains(%v, %q) = %v, want %v", tc.list, tc.s, got, tc.want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "hello", "world"); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := Coalesce(0, 0, 42); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
