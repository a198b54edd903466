package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"
)

func main() {
	cfg := DefaultConfig()

	cmd := "table"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "table":
		rows, err := BuildTable(cfg, Groups)
		if err != nil {
			log.Fatalf("failed to build parameter table: %v", err)
		}
		if err := WriteText(os.Stdout, rows); err != nil {
			log.Fatalf("failed to write table: %v", err)
		}
	case "json":
		rows, err := BuildTable(cfg, Groups)
		if err != nil {
			log.Fatalf("failed to build parameter table: %v", err)
		}
		if err := WriteJSON(os.Stdout, rows); err != nil {
			log.Fatalf("failed to write table: %v", err)
		}
	case "encode":
		if len(os.Args) < 3 {
			log.Fatalf("usage: %s encode <pattern> [values...]", os.Args[0])
		}
		values, err := parseValues(strings.Join(os.Args[3:], " "))
		if err != nil {
			log.Fatalf("invalid values: %v", err)
		}
		out, err := describePattern(os.Args[2], values)
		if err != nil {
			log.Fatalf("failed to encode pattern: %v", err)
		}
		fmt.Println(out)
	case "frame":
		if len(os.Args) != 5 {
			log.Fatalf("usage: %s frame <group> <param-no> <value>", os.Args[0])
		}
		g, err := findGroup(os.Args[2])
		if err != nil {
			log.Fatal(err)
		}
		param, value, err := parseFrameArgs(os.Args[3], os.Args[4])
		if err != nil {
			log.Fatalf("invalid arguments: %v", err)
		}
		msg, err := FrameParameter(cfg, g, param, value)
		if err != nil {
			log.Fatalf("failed to frame parameter: %v", err)
		}
		fmt.Println(formatMessage(msg))
	case "mcp":
		runMCP(cfg)
	default:
		log.Fatalf("unknown command %q", cmd)
	}
}

// parseValues reads integers separated by whitespace, commas or semicolons.
func parseValues(text string) ([]int, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})

	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", tok, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseFrameArgs reads the parameter number and data value of the frame
// command.
func parseFrameArgs(paramText, valueText string) (int, int, error) {
	nums, err := parseValues(paramText + " " + valueText)
	if err != nil {
		return 0, 0, err
	}
	if len(nums) != 2 {
		return 0, 0, fmt.Errorf("want a parameter number and a value, got %q %q", paramText, valueText)
	}
	return nums[0], nums[1], nil
}

// describePattern renders pattern with values as binary, plus hex when the
// pattern is one byte wide.
func describePattern(pattern string, values []int) (string, error) {
	bits, err := EncodeBinary(pattern, values...)
	if err != nil {
		return "", err
	}
	if len(bits) != 8 {
		return bits, nil
	}
	hex, err := EncodeHexByte(pattern, values...)
	if err != nil {
		return "", err
	}
	return bits + " " + hex, nil
}
