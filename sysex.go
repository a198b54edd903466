package main

import (
	"fmt"
	"strconv"

	"gitlab.com/gomidi/midi/v2"
)

// FrameParameter builds the complete parameter change message that sets
// paramNo of group g to value.
func FrameParameter(cfg Config, g Group, paramNo int, value int) (midi.Message, error) {
	e, err := NewEmitter(cfg)
	if err != nil {
		return nil, err
	}
	if err := e.BeginGroup(g); err != nil {
		return nil, err
	}

	e.paramNo = paramNo
	r, err := e.Emit(fmt.Sprintf("parameter %d", paramNo))
	if err != nil {
		return nil, err
	}
	r.Bytes[dataByte], err = EncodeHexByte(dataPattern, value)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}

	data := make([]byte, 0, messageBytes)
	for _, h := range r.Bytes {
		b, err := strconv.ParseUint(h, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid message byte %q: %w", h, err)
		}
		data = append(data, byte(b))
	}
	return midi.SysEx(data), nil
}

// formatMessage renders msg as space separated uppercase hex bytes.
func formatMessage(msg midi.Message) string {
	return fmt.Sprintf("% X", msg.Bytes())
}
