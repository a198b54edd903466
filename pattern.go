package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// A pattern describes the bit layout of one SysEx byte. '0' and '1' are
// literal bits; any other character marks a field. A field is a maximal run
// of one repeated mask character and binds exactly one value, so "1x0y"
// has two fields and "aaaabbbb" has two fields of width 4.

// ErrEmptyPattern is returned when an encode call receives an empty pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// RangeError reports a value that does not fit the field it is bound to.
type RangeError struct {
	Pattern  string
	Field    string // mask text; empty for plain byte conversion
	Position int    // 1-based start of the field in Pattern
	Value    int
	Max      int
}

func (e *RangeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("value %d out of range for 8-bit data (max %d)", e.Value, e.Max)
	}
	return fmt.Sprintf("value %d out of range for field %q at position %d in pattern %q (max %d)",
		e.Value, e.Field, e.Position, e.Pattern, e.Max)
}

// ArityError reports a mismatch between the number of fields in a pattern
// and the number of values supplied for it.
type ArityError struct {
	Pattern string
	Fields  int
	Values  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("pattern %q has %d field(s) but %d value(s) were given", e.Pattern, e.Fields, e.Values)
}

// ByteWidthError is returned by EncodeHexByte when the pattern does not
// describe exactly one byte.
type ByteWidthError struct {
	Pattern string
	Bits    int
}

func (e *ByteWidthError) Error() string {
	return fmt.Sprintf("pattern %q is %d bits wide, want 8", e.Pattern, e.Bits)
}

type span struct {
	start int // 0-based offset into the pattern, in characters
	width int // in characters
	text  string
	field bool
}

// tokenize splits a pattern into literal and field spans in pattern order.
// Consecutive literal bits are merged into one span.
func tokenize(pattern string) []span {
	chars := []rune(pattern)

	var spans []span
	for i := 0; i < len(chars); {
		c := chars[i]
		j := i + 1
		if isLiteral(c) {
			for j < len(chars) && isLiteral(chars[j]) {
				j++
			}
		} else {
			for j < len(chars) && chars[j] == c {
				j++
			}
		}
		spans = append(spans, span{start: i, width: j - i, text: string(chars[i:j]), field: !isLiteral(c)})
		i = j
	}
	return spans
}

func isLiteral(c rune) bool {
	return c == '0' || c == '1'
}

func countFields(spans []span) int {
	n := 0
	for _, s := range spans {
		if s.field {
			n++
		}
	}
	return n
}

// EncodeBinary inserts values into the fields of pattern, left to right, and
// returns the resulting bit string. The result has the same length as the
// pattern.
func EncodeBinary(pattern string, values ...int) (string, error) {
	if pattern == "" {
		return "", ErrEmptyPattern
	}

	spans := tokenize(pattern)
	if n := countFields(spans); n != len(values) {
		return "", &ArityError{Pattern: pattern, Fields: n, Values: len(values)}
	}

	var b strings.Builder
	b.Grow(len(pattern))

	next := 0
	for _, s := range spans {
		if !s.field {
			b.WriteString(s.text)
			continue
		}
		bits, err := renderField(pattern, s, values[next])
		if err != nil {
			return "", err
		}
		b.WriteString(bits)
		next++
	}
	return b.String(), nil
}

func renderField(pattern string, s span, value int) (string, error) {
	bits := strconv.FormatInt(int64(value), 2)
	if value < 0 || len(bits) > s.width {
		return "", &RangeError{
			Pattern:  pattern,
			Field:    s.text,
			Position: s.start + 1,
			Value:    value,
			Max:      maxFieldValue(s.width),
		}
	}
	return leftPad(bits, s.width, '0'), nil
}

// maxFieldValue is 2^width-1, capped at the largest int.
func maxFieldValue(width int) int {
	if width >= strconv.IntSize-1 {
		return math.MaxInt
	}
	return 1<<width - 1
}

// EncodeHexByte is EncodeBinary for single-byte patterns, returning the
// result as two uppercase hex digits.
func EncodeHexByte(pattern string, values ...int) (string, error) {
	bits, err := EncodeBinary(pattern, values...)
	if err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(bits); n != 8 {
		return "", &ByteWidthError{Pattern: pattern, Bits: n}
	}
	return binaryToHex(bits, 2)
}

// HexByte renders a plain 8-bit value as two uppercase hex digits.
func HexByte(value int) (string, error) {
	if value < 0 || value > 0xFF {
		return "", &RangeError{Value: value, Max: 0xFF}
	}
	return leftPad(strings.ToUpper(strconv.FormatInt(int64(value), 16)), 2, '0'), nil
}
