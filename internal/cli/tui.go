package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FontListModel - Interactive font selection
// =============================================================================

// FontListModel is the bubbletea model for picking one font path out of
// several matches.
type FontListModel struct {
	Fonts    []string
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewFontListModel creates a new font list model.
func NewFontListModel(fonts []string) FontListModel {
	return FontListModel{
		Fonts:  fonts,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m FontListModel) Init() tea.Cmd {
	return nil
}

func (m FontListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Fonts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Fonts[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FontListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Font"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Fonts) {
		end = len(m.Fonts)
	}

	for i := m.Offset; i < end; i++ {
		path := m.Fonts[i]
		name := filepath.Base(path)
		dir := filepath.Dir(path)

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		b.WriteString(cursor + style.Render(name) + " " + listDimStyle.Render(dir))
		b.WriteString("\n")
	}

	if len(m.Fonts) > m.Height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d/%d", m.Cursor+1, len(m.Fonts))))
	}

	return b.String()
}
