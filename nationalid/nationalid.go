// Package nationalid validates national identity numbers of the form "12.345.678-5" or "12345678-5".
//
// An identifier consists of a numeric body of seven or eight digits, optionally grouped with dots,
// followed by a dash and a check character. The check character is a digit or the letter K and is
// computed from the body with the modulo-11 algorithm:
//
//   - multiply the body digits right-to-left by the repeating weights 2, 3, 4, 5, 6, 7
//   - sum the products and compute 11 - (sum mod 11)
//   - 11 yields '0', 10 yields 'K', any other result yields its digit
//
// All functions are pure and safe for concurrent use.
package nationalid

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidBody is returned by CheckCharacter when the body is empty or contains non-digits.
var ErrInvalidBody = errors.New("identifier body must consist of digits only")

var formatPattern = regexp.MustCompile(`^\d{1,2}\.?\d{3}\.?\d{3}-[\dkK]$`)

// ValidateFormat reports whether id is shaped like a national identifier.
// It does not look at the check character's value.
func ValidateFormat(id string) bool {
	if id == "" {
		return false
	}

	return formatPattern.MatchString(id)
}

// ValidateCheckDigit reports whether the check character of id matches its body.
// Identifiers which fail ValidateFormat are rejected before the checksum is computed.
func ValidateCheckDigit(id string) bool {
	if !ValidateFormat(id) {
		return false
	}

	cleaned := Clean(id)
	body, supplied := cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1]

	expected, err := CheckCharacter(body)
	if err != nil {
		return false
	}

	return upper(supplied) == expected
}

// Validate reports whether id is well-formed and carries the correct check character.
func Validate(id string) bool {
	return ValidateFormat(id) && ValidateCheckDigit(id)
}

// Clean strips the grouping dots and the dash separator from id.
func Clean(id string) string {
	return strings.NewReplacer(".", "", "-", "").Replace(id)
}

// CheckCharacter computes the expected check character for a digit-only body.
// The result is one of '0'..'9' or 'K'.
func CheckCharacter(body string) (byte, error) {
	if body == "" {
		return 0, ErrInvalidBody
	}

	sum := 0
	weight := 2

	for i := len(body) - 1; i >= 0; i-- {
		digit := body[i]
		if digit < '0' || digit > '9' {
			return 0, ErrInvalidBody
		}

		sum += int(digit-'0') * weight

		weight++
		if weight > 7 {
			weight = 2
		}
	}

	switch result := 11 - sum%11; result {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + result), nil
	}
}

func upper(c byte) byte {
	if c == 'k' {
		return 'K'
	}

	return c
}
