package tui

import (
	"os"
	"strings"

	"cargowrap/internal/model"
	"cargowrap/internal/target"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgResolutionReady indicates that resolution has completed.
type MsgResolutionReady struct {
	Resolution *model.Resolution
	Err        error
}

// MsgError indicates the TUI itself failed (not a resolution outcome).
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case MsgResolutionReady:
		m.Loading = false
		m.Resolution = msg.Resolution
		m.ResolveErr = msg.Err
		// Auto-populate filtered indices with all
		m.FilteredIndices = make([]int, len(m.Resolution.Steps))
		for i := range m.Resolution.Steps {
			m.FilteredIndices[i] = i
		}
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = 0
		}
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performFilter()
				return m, nil
			case tea.KeyEsc:
				// Exit filter mode and clear it
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.performFilter() // Reset to all
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.performFilter()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *AppModel) performFilter() {
	if m.Resolution == nil {
		return
	}
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		// Reset
		m.FilterActive = false
		m.FilteredIndices = make([]int, len(m.Resolution.Steps))
		for i := range m.Resolution.Steps {
			m.FilteredIndices[i] = i
		}
	} else {
		m.FilterActive = true
		var result []int
		for i, step := range m.Resolution.Steps {
			if strings.Contains(strings.ToLower(step.Path), term) ||
				strings.Contains(strings.ToLower(string(step.Kind)), term) ||
				strings.Contains(strings.ToLower(step.Detail), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// InitResolveCmd runs resolution in the background.
func InitResolveCmd() tea.Cmd {
	return func() tea.Msg {
		cwd, err := os.Getwd()
		if err != nil {
			return MsgError(err)
		}
		res, err := target.ResolveFrom(cwd)
		return MsgResolutionReady{Resolution: res, Err: err}
	}
}
