package tree

import (
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/temirov/struktur/internal/types"
)

// sortEntries orders directories before files and names case-insensitively.
// Upper-cased names are compared by UTF-16 code unit, so characters outside the
// Basic Multilingual Plane sort before U+E000..U+FFFF. Names equal under case
// folding fall back to a byte comparison so the order is stable between runs.
func sortEntries(entries []types.Entry) {
	slices.SortFunc(entries, compareEntries)
}

func compareEntries(left, right types.Entry) int {
	leftRank := kindRank(left)
	rightRank := kindRank(right)
	if leftRank != rightRank {
		return leftRank - rightRank
	}
	if foldedComparison := compareCodeUnits(foldName(left.Name), foldName(right.Name)); foldedComparison != 0 {
		return foldedComparison
	}
	return strings.Compare(left.Name, right.Name)
}

func kindRank(entry types.Entry) int {
	if entry.IsDirectory() {
		return 0
	}
	return 1
}

func compareCodeUnits(left, right string) int {
	return slices.Compare(utf16.Encode([]rune(left)), utf16.Encode([]rune(right)))
}
