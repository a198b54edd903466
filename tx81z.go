package main

import "fmt"

// Bit layouts of the TX81Z parameter change message:
//
//	0 43       device ID
//	1 0001nnnn n = channel
//	2 0ggggghh g = group, h = subgroup
//	3 0ppppppp p = parameter number
//	4 0vvvvvvv v = data
const (
	channelPattern = "0001nnnn"
	groupPattern   = "0ggggghh"
	paramPattern   = "0ppppppp"
	dataPattern    = "0vvvvvvv"
)

// Config holds the fixed parts of every generated message.
type Config struct {
	DeviceID int // Yamaha manufacturer ID, sent as a plain byte
	// Channel is the raw value of the channel nibble.
	Channel int
	// DataText is written in place of the data byte in tables.
	DataText string
}

// DefaultConfig is what the CLI and the MCP server use.
func DefaultConfig() Config {
	return Config{
		DeviceID: 0x43,
		Channel:  1,
		DataText: "VV",
	}
}

// Group is one parameter group of the TX81Z voice edit buffer.
type Group struct {
	Name       string
	Group      int
	Subgroup   int
	FirstParam int
	Params     []string
}

var operatorParams = []string{
	"Attack Rate",
	"Decay 1 Rate",
	"Decay 2 Rate",
	"Release Rate",
	"Decay 1 Level",
	"Level Scaling",
	"Rate Scaling",
	"EG Bias Sensitivity",
	"Amp Mod Enable",
	"Key Vel Sensitivity",
	"Output Level",
	"Frequency",
	"Detune",
}

var voiceParams = []string{
	"Algorithm",
	"Feedback",
	"LFO Speed",
	"LFO Delay",
	"LFO Pitch Mod Depth",
	"LFO Amp Mod Depth",
	"LFO Sync",
	"LFO Wave",
	"Pitch Mod Sens",
	"Amp Mod Sens",
	"Transpose",
	"Poly / Mono",
	"Pitch Bend Range",
	"Portamento",
	"Portamento Time",
	"Foot Control Volume",
	"Sustain",
	"Portamento",
	"Chorus",
	"Mod Wheel Pitch",
	"Mod Wheel Amp",
	"Breath Ctrl Pitch",
	"Breath Ctrl Amp",
	"Breath Ctrl Pitch Bias",
	"Breath Ctrl EG Bias",
}

var additionalOperatorParams = []string{
	"Fixed Frequency",
	"Fix Frequency Range",
	"Frequency Range Fine",
	"Waveform",
	"EG Shift",
}

const voiceNameLength = 10

// Groups lists the parameter groups in table order.
var Groups = []Group{
	{
		Name:       "Voice Edit",
		Group:      4,
		Subgroup:   2,
		FirstParam: 0,
		Params:     voiceEditParams(),
	},
	{
		Name:       "Operator on/off",
		Group:      4,
		Subgroup:   2,
		FirstParam: 93,
		Params:     []string{"OP 1-4 on/off"},
	},
	{
		Name:       "Voice Edit Additional Parameters",
		Group:      4,
		Subgroup:   3,
		FirstParam: 0,
		Params:     additionalParams(),
	},
}

func voiceEditParams() []string {
	var params []string
	params = append(params, perOperator(operatorParams)...)
	params = append(params, voiceParams...)
	for i := 1; i <= voiceNameLength; i++ {
		params = append(params, fmt.Sprintf("Voice Name char%d", i))
	}
	return params
}

func additionalParams() []string {
	params := perOperator(additionalOperatorParams)
	return append(params, "Reverb Rate", "Foot Controller Pitch", "Foot Controller Amp")
}

// perOperator expands names for operators 1 through 4.
func perOperator(names []string) []string {
	params := make([]string, 0, 4*len(names))
	for op := 1; op <= 4; op++ {
		for _, n := range names {
			params = append(params, fmt.Sprintf("OP%d %s", op, n))
		}
	}
	return params
}

// findGroup looks up a group by name.
func findGroup(name string) (Group, error) {
	for _, g := range Groups {
		if g.Name == name {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("unknown parameter group %q", name)
}
