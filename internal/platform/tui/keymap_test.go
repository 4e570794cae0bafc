package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slider/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{name: "arrow up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: core.ActionUp},
		{name: "w", msg: runeKey("w"), want: core.ActionUp},
		{name: "arrow down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: core.ActionDown},
		{name: "arrow left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: core.ActionLeft},
		{name: "l", msg: runeKey("l"), want: core.ActionRight},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: core.ActionShuffle},
		{name: "r", msg: runeKey("r"), want: core.ActionRestore},
		{name: "c", msg: runeKey("c"), want: core.ActionCancel},
		{name: "y", msg: runeKey("y"), want: core.ActionCopy},
		{name: "ctrl+s", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, want: core.ActionScreenshot},
		{name: "p", msg: runeKey("p"), want: core.ActionPresets},
		{name: "?", msg: runeKey("?"), want: core.ActionHelp},
		{name: "q", msg: runeKey("q"), want: core.ActionQuit},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: core.ActionQuit},
		{name: "unbound", msg: runeKey("z"), want: core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{msg: tea.KeyMsg{Type: tea.KeyUp}, want: MenuActionUp},
		{msg: runeKey("j"), want: MenuActionDown},
		{msg: tea.KeyMsg{Type: tea.KeyEnter}, want: MenuActionSelect},
		{msg: tea.KeyMsg{Type: tea.KeyEsc}, want: MenuActionBack},
		{msg: runeKey("q"), want: MenuActionQuit},
		{msg: runeKey("x"), want: MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestEmptyStepOpposesSlide(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		d := emptyStep(a)
		if d.IsZero() {
			t.Errorf("emptyStep(%v) is zero", a)
		}
	}
	if emptyStep(core.ActionUp) != emptyStep(core.ActionDown).Neg() {
		t.Error("up and down should be opposite")
	}
	if !emptyStep(core.ActionShuffle).IsZero() {
		t.Error("non-move action should map to no step")
	}
}
