package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	idByte = iota
	channelByte
	groupByte
	paramByte
	dataByte
	messageBytes
)

// Row is one line of the parameter table.
type Row struct {
	Index int                  `json:"index"`
	Name  string               `json:"name"`
	Group string               `json:"group"`
	Bytes [messageBytes]string `json:"bytes"`
}

// Hex returns the message bytes joined by spaces.
func (r Row) Hex() string {
	return strings.Join(r.Bytes[:], " ")
}

// Emitter renders rows for consecutive parameters of one group at a time.
type Emitter struct {
	bytes   [messageBytes]string
	group   string
	paramNo int
}

// NewEmitter renders the device ID and channel bytes, which are shared by
// every row.
func NewEmitter(cfg Config) (*Emitter, error) {
	id, err := HexByte(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("device ID: %w", err)
	}
	ch, err := EncodeHexByte(channelPattern, cfg.Channel)
	if err != nil {
		return nil, fmt.Errorf("channel: %w", err)
	}

	e := &Emitter{}
	e.bytes[idByte] = id
	e.bytes[channelByte] = ch
	e.bytes[dataByte] = cfg.DataText
	return e, nil
}

// BeginGroup switches to a new group and resets the parameter counter.
func (e *Emitter) BeginGroup(g Group) error {
	b, err := EncodeHexByte(groupPattern, g.Group, g.Subgroup)
	if err != nil {
		return fmt.Errorf("group %q: %w", g.Name, err)
	}
	e.bytes[groupByte] = b
	e.group = g.Name
	e.paramNo = g.FirstParam
	return nil
}

// Emit returns the row for the next parameter of the current group.
func (e *Emitter) Emit(name string) (Row, error) {
	b, err := EncodeHexByte(paramPattern, e.paramNo)
	if err != nil {
		return Row{}, fmt.Errorf("parameter %q: %w", name, err)
	}

	r := Row{Index: e.paramNo, Name: name, Group: e.group, Bytes: e.bytes}
	r.Bytes[paramByte] = b
	e.paramNo++
	return r, nil
}

// BuildTable renders a row for every parameter in groups.
func BuildTable(cfg Config, groups []Group) ([]Row, error) {
	e, err := NewEmitter(cfg)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, g := range groups {
		if err := e.BeginGroup(g); err != nil {
			return nil, err
		}
		for _, name := range g.Params {
			r, err := e.Emit(name)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
	}
	return rows, nil
}

// WriteText writes rows as semicolon separated lines, with a header line
// wherever the group changes.
func WriteText(w io.Writer, rows []Row) error {
	group := ""
	for i, r := range rows {
		if i == 0 || r.Group != group {
			group = r.Group
			if _, err := fmt.Fprintf(w, "\nParameter group '%s':\n", group); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\"%d\";\"%s\";\"%s\"\n", r.Index, r.Name, r.Hex()); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	asJson, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal table to JSON: %v", err)
	}
	_, err = fmt.Fprintln(w, string(asJson))
	return err
}
