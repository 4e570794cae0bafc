package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/vovakirdan/tui-slider/internal/platform/export"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// copyHistory puts the move history notation on the system clipboard.
func (m *Model) copyHistory() {
	notation := m.puzzle.History().String()
	if notation == "" {
		m.hud.message = "No moves to copy"
		return
	}
	if err := writeClipboard(notation); err != nil {
		m.log.Warn("clipboard unavailable", "err", err)
		m.hud.message = "Clipboard unavailable"
		return
	}
	m.log.Debug("copied history", "moves", len(notation))
	m.hud.message = fmt.Sprintf("Copied %d moves", len(notation))
}

// saveScreenshot writes the current screen as text and the board as PNG.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		m.hud.message = "No screenshot directory"
		return
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.log.Error("screenshot failed", "err", err)
		m.hud.message = "Screenshot failed"
		return
	}

	b := m.puzzle.Board()
	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("slider_%dx%d_%s", b.Cols(), b.Rows(), timestamp))

	m.draw()
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.log.Error("screenshot failed", "err", err)
		m.hud.message = "Screenshot failed"
		return
	}
	if err := export.SavePNG(base+".png", b, export.DefaultOptions()); err != nil {
		m.log.Error("png export failed", "err", err)
		m.hud.message = "Saved text only"
		return
	}

	m.log.Info("screenshot saved", "path", base)
	m.hud.message = "Saved " + filepath.Base(base)
}
