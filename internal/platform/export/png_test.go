package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-slider/internal/puzzle"
)

func newBoard(t *testing.T, cols, rows int) *puzzle.Board {
	t.Helper()
	b, err := puzzle.NewBoard(cols, rows)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// sample returns the color just inside the top edge of a slot, away from
// rounded corners and the label.
func sample(t *testing.T, img interface{ At(x, y int) color.Color }, col, row int, opts Options) color.RGBA {
	t.Helper()
	x, y := TileOrigin(col, row, opts)
	r, g, b, a := img.At(int(x+opts.TileSize/2), int(y+3)).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestBounds(t *testing.T) {
	opts := Options{TileSize: 40, Gap: 4, FontSize: 12}
	w, h := Bounds(newBoard(t, 3, 2), opts)
	if w != 136 || h != 92 {
		t.Errorf("Bounds() = %dx%d, want 136x92", w, h)
	}
}

func TestBoardImage(t *testing.T) {
	opts := Options{TileSize: 40, Gap: 4, FontSize: 14}
	b := newBoard(t, 3, 3)
	b.MoveEmptyCell(puzzle.Up)

	img, err := BoardImage(b, opts)
	if err != nil {
		t.Fatalf("BoardImage: %v", err)
	}
	if got := img.Bounds().Dx(); got != 136 {
		t.Errorf("width = %d, want 136", got)
	}

	if got := sample(t, img, 0, 0, opts); got != TileColor(0) {
		t.Errorf("tile (0,0) = %v, want %v", got, TileColor(0))
	}
	// the tile from home row 1 now sits in row 2
	if got := sample(t, img, 2, 2, opts); got != TileColor(1) {
		t.Errorf("tile (2,2) = %v, want %v", got, TileColor(1))
	}
	if got := sample(t, img, 2, 1, opts); got != background {
		t.Errorf("empty slot = %v, want background", got)
	}
}

func TestBoardImageInvalidLayout(t *testing.T) {
	if _, err := BoardImage(newBoard(t, 2, 2), Options{TileSize: 0}); err == nil {
		t.Error("expected error for zero tile size")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	b := newBoard(t, 4, 4)

	if err := SavePNG(path, b, DefaultOptions()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w, h := Bounds(b, DefaultOptions())
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("decoded %v, want %dx%d", img.Bounds(), w, h)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "board.png")
	if err := SavePNG(path, newBoard(t, 2, 2), DefaultOptions()); err == nil {
		t.Error("expected error for missing directory")
	}
}
