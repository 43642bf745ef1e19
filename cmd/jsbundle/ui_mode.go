package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// onOffMode is the value of --color and --ui.
type onOffMode string

const (
	modeAuto onOffMode = "auto"
	modeOn   onOffMode = "on"
	modeOff  onOffMode = "off"
)

func parseMode(flag, value string) (onOffMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return modeAuto, nil
	case "on":
		return modeOn, nil
	case "off":
		return modeOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

func readColorMode(cmd *cobra.Command) (onOffMode, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", err
	}
	return parseMode("color", value)
}

func useColor(mode onOffMode, f *os.File) bool {
	switch mode {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return isTerminal(f)
	}
}

func shouldUseTUI(mode onOffMode) bool {
	switch mode {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
