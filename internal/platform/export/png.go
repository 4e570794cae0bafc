// Package export renders a puzzle board to PNG.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/tui-slider/internal/core"
	"github.com/vovakirdan/tui-slider/internal/puzzle"
)

// Options controls the image layout in pixels.
type Options struct {
	TileSize float64
	Gap      float64
	FontSize float64
}

// DefaultOptions returns a layout with 64px tiles.
func DefaultOptions() Options {
	return Options{
		TileSize: 64,
		Gap:      6,
		FontSize: 24,
	}
}

var (
	background = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	labelColor = color.RGBA{R: 0x11, G: 0x11, B: 0x1b, A: 0xff}
)

// tileColors approximates the terminal palette used by the TUI.
var tileColors = map[core.Color]color.RGBA{
	core.ColorBrightCyan:    {R: 0x89, G: 0xdc, B: 0xeb, A: 0xff},
	core.ColorBrightGreen:   {R: 0xa6, G: 0xe3, B: 0xa1, A: 0xff},
	core.ColorBrightYellow:  {R: 0xf9, G: 0xe2, B: 0xaf, A: 0xff},
	core.ColorOrange:        {R: 0xfa, G: 0xb3, B: 0x87, A: 0xff},
	core.ColorBrightMagenta: {R: 0xf5, G: 0xc2, B: 0xe7, A: 0xff},
	core.ColorBrightBlue:    {R: 0x89, G: 0xb4, B: 0xfa, A: 0xff},
}

// TileColor returns the fill color of a tile whose home row is homeRow.
func TileColor(homeRow int) color.RGBA {
	if c, ok := tileColors[core.TileColor(homeRow)]; ok {
		return c
	}
	return color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}
}

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

func loadFace(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(gomono.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", fontErr)
	}
	return truetype.NewFace(fontTTF, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Bounds returns the image size for a board.
func Bounds(b *puzzle.Board, opts Options) (w, h int) {
	w = int(float64(b.Cols())*opts.TileSize + float64(b.Cols()+1)*opts.Gap)
	h = int(float64(b.Rows())*opts.TileSize + float64(b.Rows()+1)*opts.Gap)
	return w, h
}

// TileOrigin returns the top-left pixel of the slot at (col, row).
func TileOrigin(col, row int, opts Options) (x, y float64) {
	x = opts.Gap + float64(col)*(opts.TileSize+opts.Gap)
	y = opts.Gap + float64(row)*(opts.TileSize+opts.Gap)
	return x, y
}

// BoardImage draws every tile at its current position, labelled with its
// 1-based home number. The empty slot is left as background.
func BoardImage(b *puzzle.Board, opts Options) (image.Image, error) {
	if opts.TileSize <= 0 || opts.Gap < 0 {
		return nil, fmt.Errorf("export: invalid layout %+v", opts)
	}

	w, h := Bounds(b, opts)
	dc := gg.NewContext(w, h)
	dc.SetColor(background)
	dc.Clear()

	face, err := loadFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	radius := opts.TileSize * 0.12
	for _, c := range b.Cells() {
		if c.Empty {
			continue
		}
		_, homeRow := b.HomeOf(c.ID)
		x, y := TileOrigin(c.Col, c.Row, opts)

		dc.SetColor(TileColor(homeRow))
		dc.DrawRoundedRectangle(x, y, opts.TileSize, opts.TileSize, radius)
		dc.Fill()

		dc.SetColor(labelColor)
		label := strconv.Itoa(int(c.ID) + 1)
		dc.DrawStringAnchored(label, x+opts.TileSize/2, y+opts.TileSize/2, 0.5, 0.35)
	}

	return dc.Image(), nil
}

// WritePNG encodes the board image to w.
func WritePNG(w io.Writer, b *puzzle.Board, opts Options) error {
	img, err := BoardImage(b, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

// SavePNG writes the board image to path.
func SavePNG(path string, b *puzzle.Board, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WritePNG(f, b, opts); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	return f.Close()
}
