package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameParameter(t *testing.T) {
	require := require.New(t)

	msg, err := FrameParameter(DefaultConfig(), Groups[0], 0, 31)
	require.NoError(err)
	require.Equal([]byte{0xF0, 0x43, 0x11, 0x12, 0x00, 0x1F, 0xF7}, msg.Bytes())
	require.Equal("F0 43 11 12 00 1F F7", formatMessage(msg))

	var data []byte
	require.True(msg.GetSysEx(&data))
	require.Equal([]byte{0x43, 0x11, 0x12, 0x00, 0x1F}, data)
}

func TestFrameParameterAdditional(t *testing.T) {
	msg, err := FrameParameter(DefaultConfig(), Groups[2], 22, 127)
	require.NoError(t, err)
	require.Equal(t, "F0 43 11 13 16 7F F7", formatMessage(msg))
}

func TestFrameParameterOutOfRange(t *testing.T) {
	var rangeErr *RangeError

	_, err := FrameParameter(DefaultConfig(), Groups[0], 0, 128)
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, dataPattern, rangeErr.Pattern)
	require.Equal(t, 127, rangeErr.Max)

	_, err = FrameParameter(DefaultConfig(), Groups[0], 200, 0)
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, paramPattern, rangeErr.Pattern)
}
