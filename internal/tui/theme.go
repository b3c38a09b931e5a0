package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/prxssh/mutator/internal/config"
	"github.com/prxssh/mutator/internal/state"
)

type theme struct {
	Bg, Fg       lipgloss.Color
	Red, Green   lipgloss.Color
	Yellow, Blue lipgloss.Color
	Aqua, Orange lipgloss.Color
	Gray         lipgloss.Color
	// Colors cycled through by the change color key
	Palette []state.Color
}

func newTheme(name string) theme {
	switch name {
	case config.ThemeNord:
		return theme{
			Bg:     lipgloss.Color("#2e3440"),
			Fg:     lipgloss.Color("#eceff4"),
			Red:    lipgloss.Color("#bf616a"),
			Green:  lipgloss.Color("#a3be8c"),
			Yellow: lipgloss.Color("#ebcb8b"),
			Blue:   lipgloss.Color("#5e81ac"),
			Aqua:   lipgloss.Color("#88c0d0"),
			Orange: lipgloss.Color("#d08770"),
			Gray:   lipgloss.Color("#4c566a"),
			Palette: []state.Color{
				{R: 0xbf, G: 0x61, B: 0x6a},
				{R: 0xa3, G: 0xbe, B: 0x8c},
				{R: 0xeb, G: 0xcb, B: 0x8b},
				{R: 0x5e, G: 0x81, B: 0xac},
				{R: 0xb4, G: 0x8e, B: 0xad},
			},
		}
	default:
		// Gruvbox Dark, Medium-Contrast Color Palette
		return theme{
			Bg:     lipgloss.Color("#282828"),
			Fg:     lipgloss.Color("#ebdbb2"),
			Red:    lipgloss.Color("#cc241d"),
			Green:  lipgloss.Color("#98971a"),
			Yellow: lipgloss.Color("#d79921"),
			Blue:   lipgloss.Color("#458588"),
			Aqua:   lipgloss.Color("#689d6a"),
			Orange: lipgloss.Color("#d65d0e"),
			Gray:   lipgloss.Color("#928374"),
			Palette: []state.Color{
				{R: 0xcc, G: 0x24, B: 0x1d},
				{R: 0x98, G: 0x97, B: 0x1a},
				{R: 0xd7, G: 0x99, B: 0x21},
				{R: 0x45, G: 0x85, B: 0x88},
				{R: 0xb1, G: 0x62, B: 0x86},
				{R: 0xff, G: 0x00, B: 0xff},
			},
		}
	}
}
