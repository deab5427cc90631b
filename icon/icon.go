// Package icon rasterises small PNG glyphs into terminal cells.
//
// An icon is Width cells wide and one cell tall. Each cell covers a 2x2 pixel
// block rendered with a Unicode quadrant character, so the source image is
// resampled to a (2*Width)x2 grid first.
package icon

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

// Width is the icon width in terminal cells
const Width = 2

// Alpha at or above this is treated as ink
const opaqueThreshold = 0x80

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

// Cell is one rasterised terminal cell
// A cell with HasBg false takes the background of whatever it is drawn on
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	HasBg bool
}

// Icon is a rasterised image or a single fallback glyph
type Icon struct {
	Path     string
	Cells    [Width]Cell
	Fallback bool
	glyph    rune
}

// Load reads and rasterises a PNG
// It never returns nil: on any error the fallback glyph icon is returned with the error
func Load(path string, fallback rune) (*Icon, error) {
	ic := &Icon{Path: path, glyph: fallback}
	if err := ic.Reload(); err != nil {
		return ic, err
	}
	return ic, nil
}

// Reload re-reads the icon from disk, switching to the fallback glyph on error
func (ic *Icon) Reload() error {
	img, err := decode(ic.Path)
	if err != nil {
		ic.useFallback()
		return err
	}
	ic.Cells = rasterise(img)
	ic.Fallback = false
	return nil
}

// Glyph returns the fallback glyph
func (ic *Icon) Glyph() rune {
	return ic.glyph
}

func (ic *Icon) useFallback() {
	ic.Fallback = true
	ic.Cells = [Width]Cell{}
	for i := range ic.Cells {
		ic.Cells[i] = Cell{Rune: ' ', Fg: tcell.ColorDefault}
	}
	ic.Cells[0].Rune = ic.glyph
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode icon %s: empty image", path)
	}
	return img, nil
}

// rasterise resamples img to the quadrant grid and picks a glyph per cell
func rasterise(img image.Image) [Width]Cell {
	grid := image.NewNRGBA(image.Rect(0, 0, Width*2, 2))
	xdraw.ApproxBiLinear.Scale(grid, grid.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	var cells [Width]Cell
	for x := 0; x < Width; x++ {
		// [0]=UL, [1]=UR, [2]=LL, [3]=LR
		var px [4]color.NRGBA
		px[0] = grid.NRGBAAt(x*2, 0)
		px[1] = grid.NRGBAAt(x*2+1, 0)
		px[2] = grid.NRGBAAt(x*2, 1)
		px[3] = grid.NRGBAAt(x*2+1, 1)
		cells[x] = cellFor(px)
	}
	return cells
}

// cellFor derives the quadrant glyph for four pixels
// Transparent pixels become background; fully opaque blocks use the best two-colour split
func cellFor(px [4]color.NRGBA) Cell {
	mask := 0
	for i, p := range px {
		if p.A >= opaqueThreshold {
			mask |= 1 << i
		}
	}

	switch mask {
	case 0:
		return Cell{Rune: ' ', Fg: tcell.ColorDefault}
	case 15:
		r, fg, bg := findBestQuadrant(px)
		return Cell{Rune: r, Fg: toTcell(fg), Bg: toTcell(bg), HasBg: true}
	}

	var sum [3]int
	n := 0
	for i, p := range px {
		if mask&(1<<i) != 0 {
			sum[0] += int(p.R)
			sum[1] += int(p.G)
			sum[2] += int(p.B)
			n++
		}
	}
	fg := color.NRGBA{R: uint8(sum[0] / n), G: uint8(sum[1] / n), B: uint8(sum[2] / n), A: 0xff}
	return Cell{Rune: QuadrantChars[mask], Fg: toTcell(fg)}
}

// findBestQuadrant tries every split and keeps the one with least colour error
func findBestQuadrant(px [4]color.NRGBA) (rune, color.NRGBA, color.NRGBA) {
	bestError := int(^uint(0) >> 1)
	bestPattern := 0
	var bestFg, bestBg color.NRGBA

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, e := patternColors(px, pattern)
		if e < bestError {
			bestError = e
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}
	return QuadrantChars[bestPattern], bestFg, bestBg
}

func patternColors(px [4]color.NRGBA, pattern int) (fg, bg color.NRGBA, totalError int) {
	var f, b [3]int
	var fn, bn int
	for i, p := range px {
		if pattern&(1<<i) != 0 {
			f[0], f[1], f[2] = f[0]+int(p.R), f[1]+int(p.G), f[2]+int(p.B)
			fn++
		} else {
			b[0], b[1], b[2] = b[0]+int(p.R), b[1]+int(p.G), b[2]+int(p.B)
			bn++
		}
	}
	if fn > 0 {
		fg = color.NRGBA{R: uint8(f[0] / fn), G: uint8(f[1] / fn), B: uint8(f[2] / fn), A: 0xff}
	}
	if bn > 0 {
		bg = color.NRGBA{R: uint8(b[0] / bn), G: uint8(b[1] / bn), B: uint8(b[2] / bn), A: 0xff}
	}
	for i, p := range px {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		totalError += distanceSq(p, target)
	}
	return fg, bg, totalError
}

func distanceSq(a, b color.NRGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
