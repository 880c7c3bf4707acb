package session

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Choice is a parsed answer line. Index is 0-based and only meaningful when
// Valid is set; it may still be out of range for the question's options.
type Choice struct {
	Valid bool
	Index int
}

// ParseChoice converts a 1-based answer line into a Choice. Surrounding
// whitespace and a leading sign are accepted, as are single underscores
// between digits and decimal digits from any script. Anything else is
// Invalid.
func ParseChoice(line string) Choice {
	digits, ok := normalizeDigits(strings.TrimSpace(line))
	if !ok {
		return Choice{}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Numbers too large for int64 are still numbers, just never in range.
		if errors.Is(err, strconv.ErrRange) {
			return Choice{Valid: true, Index: -1}
		}
		return Choice{}
	}
	return Choice{Valid: true, Index: int(n) - 1}
}

// normalizeDigits rewrites s as an optional sign followed by ASCII digits.
// It reports false when s is not an integer literal.
func normalizeDigits(s string) (string, bool) {
	var b strings.Builder
	if s != "" && (s[0] == '+' || s[0] == '-') {
		b.WriteByte(s[0])
		s = s[1:]
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return "", false
	}
	for i, r := range runes {
		switch {
		case r == '_':
			if i == 0 || i == len(runes)-1 || runes[i-1] == '_' {
				return "", false
			}
		case unicode.IsDigit(r):
			b.WriteByte(byte('0' + digitValue(r)))
		default:
			return "", false
		}
	}
	return b.String(), true
}

// digitValue returns the value of a Unicode decimal digit. Decimal digits
// are encoded in contiguous runs starting at zero, so the value is the
// offset from the start of the run modulo ten.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}
