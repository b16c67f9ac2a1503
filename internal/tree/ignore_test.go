package tree_test

import (
	"testing"

	"github.com/temirov/struktur/internal/tree"
)

func TestIgnoreSetContains(t *testing.T) {
	t.Parallel()

	ignoreSet := tree.NewIgnoreSet("Struktur.exe", "struktur.txt", "")
	testCases := []struct {
		name     string
		expected bool
	}{
		{name: "Struktur.exe", expected: true},
		{name: "STRUKTUR.EXE", expected: true},
		{name: "struktur.TXT", expected: true},
		{name: "struktur-error.txt", expected: false},
		{name: "", expected: false},
	}
	for _, testCase := range testCases {
		if actual := ignoreSet.Contains(testCase.name); actual != testCase.expected {
			t.Fatalf("Contains(%q) = %v, want %v", testCase.name, actual, testCase.expected)
		}
	}
}

func TestZeroIgnoreSetContainsNothing(t *testing.T) {
	t.Parallel()

	var ignoreSet tree.IgnoreSet
	if ignoreSet.Contains("anything") {
		t.Fatalf("zero IgnoreSet should be empty")
	}
}
