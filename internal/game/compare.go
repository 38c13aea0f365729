package game

import (
	"strings"

	"golang.org/x/text/cases"
)

// Comparison is the rule used to check an answer.
type Comparison int

const (
	// CompareExact requires the choice to equal the answer byte for byte.
	// Used for multiple choice, where the choice comes from the option list.
	CompareExact Comparison = iota
	// CompareFold compares normalized free text: trimmed, case folded,
	// inner whitespace collapsed and Arabic spelling variants unified.
	CompareFold
)

func (c Comparison) match(choice, answer string) bool {
	switch c {
	case CompareFold:
		return normalize(choice) == normalize(answer)
	default:
		return choice == answer
	}
}

// normalize normalizes a free-text answer for comparison.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = cases.Fold().String(s)
	s = normalizeArabic(s)
	return strings.Join(strings.Fields(s), " ")
}

var arabicVariants = map[rune]rune{
	'أ': 'ا', // alef with hamza above
	'إ': 'ا', // alef with hamza below
	'آ': 'ا', // alef with madda
	'ة': 'ه', // teh marbuta
	'ى': 'ي', // alef maksura
}

// normalizeArabic drops diacritics and tatweel and unifies common letter variants.
func normalizeArabic(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x064B && r <= 0x065F {
			return -1
		}
		if r == 0x0640 {
			return -1
		}
		if v, ok := arabicVariants[r]; ok {
			return v
		}
		return r
	}, s)
}
