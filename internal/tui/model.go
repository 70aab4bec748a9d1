package tui

import (
	"cargowrap/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the doctor TUI state.
type AppModel struct {
	// Data
	Resolution *model.Resolution
	ResolveErr error // fatal resolution outcome; the steps so far still render
	Loading    bool
	Err        error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Steps to show
	FilterActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state.
func InitialModel() AppModel {
	ti := textinput.New()
	ti.Placeholder = "Filter steps..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// Init kicks off resolution in the background.
func (m AppModel) Init() tea.Cmd {
	return InitResolveCmd()
}
