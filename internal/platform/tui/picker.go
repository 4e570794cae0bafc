package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slider/internal/config"
)

// PresetPicker lets the user choose a board size from the configured presets.
type PresetPicker struct {
	presets   []config.BoardPreset
	table     table.Model
	keyMapper *KeyMapper
}

// NewPresetPicker creates a picker with the cursor on the preset matching
// the current board size, if any.
func NewPresetPicker(presets []config.BoardPreset, cols, rows int) *PresetPicker {
	columns := []table.Column{
		{Title: "Preset", Width: 10},
		{Title: "Size", Width: 6},
		{Title: "Tiles", Width: 6},
		{Title: "Description", Width: 28},
	}

	rowsData := make([]table.Row, len(presets))
	cursor := 0
	for i, p := range presets {
		rowsData[i] = table.Row{
			p.Name,
			fmt.Sprintf("%dx%d", p.Cols, p.Rows),
			fmt.Sprintf("%d", p.Cols*p.Rows-1),
			p.Description,
		}
		if p.Cols == cols && p.Rows == rows {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rowsData),
		table.WithFocused(true),
		table.WithHeight(len(presets)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(cursor)

	return &PresetPicker{
		presets:   presets,
		table:     t,
		keyMapper: NewKeyMapper(),
	}
}

// Update handles a key while the picker is open. It returns the chosen
// preset, or done=true with a nil preset when the picker was dismissed.
func (p *PresetPicker) Update(msg tea.KeyMsg) (chosen *config.BoardPreset, done bool, cmd tea.Cmd) {
	switch p.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionSelect:
		if len(p.presets) == 0 {
			return nil, true, nil
		}
		preset := p.presets[p.table.Cursor()]
		return &preset, true, nil
	case MenuActionBack, MenuActionQuit:
		return nil, true, nil
	case MenuActionUp:
		p.table.MoveUp(1)
		return nil, false, nil
	case MenuActionDown:
		p.table.MoveDown(1)
		return nil, false, nil
	}

	p.table, cmd = p.table.Update(msg)
	return nil, false, cmd
}

// View renders the picker as a bordered panel.
func (p *PresetPicker) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("BOARD SIZE"),
		p.table.View(),
		hintStyle.Render("enter select • esc back"),
	)
	return panelStyle.Render(body)
}
