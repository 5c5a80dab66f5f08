package vin

import (
	"fmt"
	"strings"
)

// ISO 3779 check-digit weights; position 9 (index 8) is the check digit.
var weights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

var transliteration = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// Normalize trims and uppercases a user-entered VIN.
func Normalize(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// Validate rejects malformed VINs before any network call: exactly 17
// characters, no I/O/Q, and a correct check digit.
func Validate(vin string) error {

	if len(vin) != 17 {
		return fmt.Errorf("VIN must be exactly 17 characters, got %d", len(vin))
	}

	for i := 0; i < 17; i++ {
		if _, ok := transliteration[vin[i]]; !ok {
			return fmt.Errorf("VIN contains invalid character %q at position %d", vin[i], i+1)
		}
	}

	var sum int

	for i := 0; i < 17; i++ {
		if i == 8 {
			continue
		}

		sum += transliteration[vin[i]] * weights[i]
	}

	remainder := sum % 11

	expected := byte('0' + remainder)
	if remainder == 10 {
		expected = 'X'
	}

	if vin[8] != expected {
		return fmt.Errorf("VIN check digit mismatch: expected %q, got %q", expected, vin[8])
	}

	return nil
}
