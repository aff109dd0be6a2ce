package tui

import (
	"fmt"
	"strings"

	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
)

func (m *Model) View() string {
	if m.loading {
		return "\n  Loading post...\n"
	}

	switch m.overlay {
	case overlayDatePicker:
		return m.viewDatePicker()
	case overlayLocationPicker:
		return m.viewLocationPicker()
	case overlayNotice:
		return m.viewNotice()
	case overlaySaved:
		return m.viewSaved()
	case overlayAttach:
		return m.viewAttach()
	}

	return m.viewEditor()
}

func (m *Model) viewEditor() string {
	d := m.draft()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Capsy"))
	b.WriteString("  ")
	b.WriteString(modeStyle.Render(modeLabel(d.Mode)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Content"))
	b.WriteString("\n")
	b.WriteString(m.bodyInput.View())
	b.WriteString("\n\n")

	if len(d.Media) > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Attachments (%d)", len(d.Media))))
		b.WriteString("\n")
		for _, item := range d.Media {
			b.WriteString("  - " + item.Name + "\n")
		}
		b.WriteString("\n")
	}

	if d.Mode == domain.ModeTimeCapsule {
		b.WriteString(labelStyle.Render("Opens"))
		b.WriteString(" ")
		if d.RevealDate.Complete() {
			b.WriteString(fmt.Sprintf("%s-%s-%s", d.RevealDate.Year, d.RevealDate.Month, d.RevealDate.Day))
		} else {
			b.WriteString(helpStyle.Render("not set (ctrl+d)"))
		}
		b.WriteString("\n")

		b.WriteString(labelStyle.Render("Place"))
		b.WriteString(" ")
		if d.Location != nil {
			b.WriteString(d.Location.Name)
		} else {
			b.WriteString(helpStyle.Render("not set (ctrl+l)"))
		}
		b.WriteString("\n\n")
	}

	if m.saving {
		b.WriteString("Saving...\n\n")
	}

	help := "tab focus · ctrl+t capsule · ctrl+a attach · ctrl+r remove · ctrl+s save · esc quit"
	if d.Mode == domain.ModeTimeCapsule {
		help = "tab focus · ctrl+t general · ctrl+d date · ctrl+l place · ctrl+a attach · ctrl+s save · esc quit"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m *Model) viewDatePicker() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("When should this capsule open?"))
	b.WriteString("\n\n")

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.dateInputs[0].View(), "  ",
		m.dateInputs[1].View(), "  ",
		m.dateInputs[2].View(),
	)
	b.WriteString(row)
	b.WriteString("\n")

	if msg := m.dates.FirstError(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · enter confirm · esc cancel"))

	return overlayStyle.Render(b.String())
}

func (m *Model) viewLocationPicker() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Where was this?"))
	b.WriteString("\n\n")
	b.WriteString(m.keywordInput.View())
	b.WriteString("\n\n")

	results := m.picker.Results()
	for i, p := range results {
		line := fmt.Sprintf("%s  %s", p.Name, labelStyle.Render(p.Address))
		if i == m.picker.Highlight() {
			line = highlightStyle.Render(fmt.Sprintf("%s  %s", p.Name, p.Address))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(results) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter search/select · ↑↓ tab move · esc cancel"))

	return overlayStyle.Render(b.String())
}

func (m *Model) viewNotice() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(m.notice))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("press any key"))
	return overlayStyle.Render(b.String())
}

func (m *Model) viewSaved() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Saved!"))
	b.WriteString("\n\n")
	b.WriteString("Post " + m.savedID + "\n\n")
	b.WriteString(helpStyle.Render("n new draft · any other key quit"))
	return overlayStyle.Render(b.String())
}

func (m *Model) viewAttach() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Attach files"))
	b.WriteString("\n\n")
	b.WriteString(m.attachInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter attach · esc cancel"))
	return overlayStyle.Render(b.String())
}

func modeLabel(mode domain.Mode) string {
	if mode == domain.ModeTimeCapsule {
		return "time capsule"
	}
	return "post"
}
