// Package ui renders ephemeral terminal notifications: loading toasts and outcome lines.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidtogallery/vidtogallery/style"
)

// loadingModel is a single spinner line shown while the backend is working.
type loadingModel struct {
	spinner spinner.Model
	message string
	done    bool
}

// dismissMsg tells the model to clear its line and quit.
type dismissMsg struct{}

func newLoadingModel(message string) loadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.New().Foreground(style.AccentColor)
	return loadingModel{spinner: s, message: message}
}

func (m loadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m loadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dismissMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders nothing once dismissed so the final frame leaves the line empty.
func (m loadingModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.message
}
