package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeftPad(t *testing.T) {
	tests := []struct {
		in     string
		length int
		want   string
	}{
		{"1", 4, "0001"},
		{"", 2, "00"},
		{"1010", 4, "1010"},
		{"110011", 4, "110011"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, leftPad(tt.in, tt.length, '0'), "leftPad(%q, %d)", tt.in, tt.length)
	}
}

func TestBinaryToHex(t *testing.T) {
	require := require.New(t)

	hex, err := binaryToHex("00100010", 2)
	require.NoError(err)
	require.Equal("22", hex)

	hex, err = binaryToHex("1111", 2)
	require.NoError(err)
	require.Equal("0F", hex)

	hex, err = binaryToHex("11111111", 2)
	require.NoError(err)
	require.Equal("FF", hex)

	_, err = binaryToHex("01x1", 2)
	require.Error(err)
}
