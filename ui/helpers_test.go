package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func testAppContext() *appContext {
	return &appContext{logger: zerolog.Nop()}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}
