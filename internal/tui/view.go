package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cargowrap/internal/doctor"
	"cargowrap/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	pathHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
				Bold(true)
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Resolving target directory... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	// Layout dimensions
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	borderColor := lipgloss.Color("63")

	// LEFT PANEL: Resolution steps
	var leftView strings.Builder
	leftView.WriteString(headerStyle.Render("Resolution Steps"))
	leftView.WriteString("\n\n")

	// Windowing: header takes 2 lines
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		step := m.Resolution.Steps[m.FilteredIndices[i]]
		line := fmt.Sprintf("%s %-17s %s", doctor.StepIcon(step), step.Kind, truncate(step.Path, leftWidth-24))
		if i == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render("> " + line))
		} else {
			leftView.WriteString(normalStyle.Render("  " + line))
		}
		leftView.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimStyle.Render("  (no steps match filter)"))
		leftView.WriteString("\n")
	}

	// RIGHT PANEL: Summary + selected step detail, scrollable for long paths
	var details strings.Builder
	details.WriteString(m.renderSummary())
	if m.SelectedIdx < len(m.FilteredIndices) {
		step := m.Resolution.Steps[m.FilteredIndices[m.SelectedIdx]]
		details.WriteString("\n")
		details.WriteString(dimStyle.Render("Selected step"))
		details.WriteString("\n")
		details.WriteString(fmt.Sprintf("Kind:   %s\n", step.Kind))
		details.WriteString(fmt.Sprintf("Path:   %s\n", pathHighlightStyle.Render(step.Path)))
		if step.Detail != "" {
			details.WriteString(fmt.Sprintf("Detail: %s\n", step.Detail))
		}
	}

	vp := m.DetailsViewport
	vp.Width = rightWidth - 2
	vp.Height = interiorHeight - 2
	if vp.Height < 1 {
		vp.Height = 1
	}
	vp.SetContent(details.String())

	var rightView strings.Builder
	rightView.WriteString(headerStyle.Render("Details"))
	rightView.WriteString("\n\n")
	rightView.WriteString(vp.View())

	leftBox := lipgloss.NewStyle().
		Width(leftWidth).
		Height(boxHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(leftView.String())

	rightBox := lipgloss.NewStyle().
		Width(rightWidth).
		Height(boxHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(rightView.String())

	main := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	// FOOTER
	var footer string
	if m.InputMode {
		footer = "Filter: " + m.InputBuffer.View()
	} else {
		footer = dimStyle.Render("↑/↓ select · / filter · q quit")
		if m.FilterActive {
			footer += dimStyle.Render(fmt.Sprintf("  [filter: %q]", m.InputBuffer.Value()))
		}
	}

	title := titleStyle.Render(" cargowrap doctor ")
	return lipgloss.JoinVertical(lipgloss.Left, title, main, footer)
}

func (m AppModel) renderSummary() string {
	var b strings.Builder
	res := m.Resolution

	writeLine := func(label, value string) {
		if value == "" {
			value = dimStyle.Render("(not resolved)")
		} else {
			value = pathHighlightStyle.Render(value)
		}
		b.WriteString(fmt.Sprintf("%-10s %s\n", label, value))
	}

	writeLine("Manifest:", res.ManifestDir)
	writeLine("VCS root:", res.VCSRoot)
	writeLine("Target:", res.TargetDir)
	if res.Provenance != "" {
		b.WriteString(fmt.Sprintf("%-10s %s\n", "Via:", string(res.Provenance)))
	}
	if m.ResolveErr != nil {
		b.WriteString(warningStyle.Render(fmt.Sprintf("Failed: %v", m.ResolveErr)))
		b.WriteString("\n")
	}
	for _, w := range res.Warnings {
		b.WriteString(warningStyle.Render(model.IconWarning + " " + w))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max+1:]
}
