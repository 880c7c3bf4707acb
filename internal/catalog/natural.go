package catalog

import (
	"strconv"
	"strings"
)

// token is one run of a tokenized identifier: either all digits or all non-digits.
type token struct {
	text    string
	numeric bool
}

// tokenize splits s into alternating digit and non-digit runs.
func tokenize(s string) []token {
	var tokens []token
	var b strings.Builder
	numeric := false

	for i, r := range s {
		isDigit := r >= '0' && r <= '9'
		if i > 0 && isDigit != numeric {
			tokens = append(tokens, token{text: b.String(), numeric: numeric})
			b.Reset()
		}
		numeric = isDigit
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		tokens = append(tokens, token{text: b.String(), numeric: numeric})
	}
	return tokens
}

// compareToken orders two tokens. Digit runs compare as integers and sort
// before text runs at the same position.
func compareToken(a, b token) int {
	switch {
	case a.numeric && b.numeric:
		return compareDigits(a.text, b.text)
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	}
	return strings.Compare(strings.ToLower(a.text), strings.ToLower(b.text))
}

// compareDigits compares two digit runs numerically. Runs too long for
// int64 fall back to comparing without leading zeros, by length then text.
func compareDigits(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}

	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// NaturalCompare orders identifiers so embedded numbers compare by value:
// "Cap 2.json" sorts before "Cap 10.json". When one token sequence is a
// prefix of the other, the shorter sorts first.
func NaturalCompare(a, b string) int {
	ta, tb := tokenize(a), tokenize(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if c := compareToken(ta[i], tb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}
	return 0
}
