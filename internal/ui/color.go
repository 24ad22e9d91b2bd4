// Package ui provides shared helpers for coloured command-line output.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme switches the palette to the lighter variants that stay
// readable on dark terminal backgrounds.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}
