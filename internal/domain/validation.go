package domain

import "unicode"

// IsValidUserID reports whether id is a well-formed user identifier:
// exactly 12 decimal digits, with no separators or surrounding whitespace.
func IsValidUserID(id string) bool {
	if len(id) != 12 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// IsISBNValid reports whether isbn is a valid ISBN-13. Hyphens are stripped
// first; what remains must be exactly 13 decimal digits whose weighted
// checksum holds: digits 1..12 are weighted alternately 1 and 3, and
// (10 - sum mod 10) mod 10 must equal the 13th digit.
func IsISBNValid(isbn string) bool {
	digits := make([]int, 0, 13)
	for i := 0; i < len(isbn); i++ {
		c := isbn[i]
		switch {
		case c == '-':
			continue
		case c < '0' || c > '9':
			return false
		default:
			digits = append(digits, int(c-'0'))
		}
	}
	if len(digits) != 13 {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		weight := 1
		if i%2 == 1 {
			weight = 3
		}
		sum += digits[i] * weight
	}
	return (10-sum%10)%10 == digits[12]
}

// IsAuthorValid reports whether name is an acceptable author or person name.
// A valid name is non-empty, starts and ends with a letter, and contains only
// letters and single occurrences of space, hyphen, apostrophe, or period as
// separators. A separator may not be immediately repeated ("Mary--Jane" and
// a doubled apostrophe are rejected; "J.R.R. Tolkien" is fine).
func IsAuthorValid(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 {
		return false
	}
	if !unicode.IsLetter(runes[0]) || !unicode.IsLetter(runes[len(runes)-1]) {
		return false
	}

	var prev rune
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
		case r == ' ' || r == '-' || r == '\'' || r == '.':
			if r == prev {
				return false
			}
		default:
			return false
		}
		prev = r
	}
	return true
}
