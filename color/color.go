// Package color provides a curated palette of ANSI colors.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Black  = New("8")
	Cream  = New("230")
	Indigo = New("62")
)
