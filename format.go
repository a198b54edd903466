package main

import (
	"fmt"
	"strconv"
	"strings"
)

// leftPad prepends pad to s until it is length bytes long. Longer input is
// returned as is.
func leftPad(s string, length int, pad byte) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(string(pad), length-len(s)) + s
}

// binaryToHex converts a string of binary digits into uppercase hex,
// zero-padded to digits.
func binaryToHex(bits string, digits int) (string, error) {
	n, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return "", fmt.Errorf("invalid binary digits %q: %w", bits, err)
	}
	return leftPad(strings.ToUpper(strconv.FormatUint(n, 16)), digits, '0'), nil
}
