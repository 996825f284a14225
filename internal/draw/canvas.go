package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/arena/internal/physics"
)

// Half-block glyphs. Each terminal cell holds two vertical sub-pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Ink is the colour of a sub-pixel. The zero value is an empty pixel.
type Ink uint8

const (
	InkNone Ink = iota
	InkWhite
	InkGray
	InkRed
	InkBlue
	InkYellow
	InkCyan
	InkGreen
	InkMagenta
)

// ansiFG holds the SGR foreground code per ink. Background is +10.
var ansiFG = [...]int{
	InkWhite:   97,
	InkGray:    90,
	InkRed:     91,
	InkBlue:    94,
	InkYellow:  93,
	InkCyan:    96,
	InkGreen:   92,
	InkMagenta: 95,
}

// cell is what one terminal cell shows: the top and bottom sub-pixel.
type cell struct {
	top, bottom Ink
}

// Glyph returns the rune and colours that draw a top/bottom pair. fg or bg
// is InkNone when unused.
func Glyph(top, bottom Ink) (ch rune, fg, bg Ink) {
	switch {
	case top == InkNone && bottom == InkNone:
		return ' ', InkNone, InkNone
	case top == bottom:
		return BlockFull, top, InkNone
	case bottom == InkNone:
		return BlockUpperHalf, top, InkNone
	case top == InkNone:
		return BlockLowerHalf, bottom, InkNone
	default:
		return BlockUpperHalf, top, bottom
	}
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Drawing uses logical coordinates that are scaled to the
// terminal area the canvas covers. Render only emits cells that changed
// since the previous frame.
type Canvas struct {
	termWidth      int   // Terminal columns covered
	termHeight     int   // Terminal rows covered
	subPixelHeight int   // termHeight * 2
	pixels         []Ink // [y * termWidth + x]
	shown          []cell
	redraw         bool

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offsets of the canvas origin.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas of termWidth×termHeight cells mapping a
// logicalWidth×logicalHeight coordinate space onto it.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the covered terminal area while keeping the logical size.
// A size change forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Ink, c.subPixelHeight*termWidth)
		c.shown = make([]cell, termHeight*termWidth)
		c.redraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset moves the canvas origin; the canvas starts at terminal position
// (col+1, row+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.redraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// ForceRedraw makes the next Render emit every cell, e.g. after the screen
// was cleared.
func (c *Canvas) ForceRedraw() {
	c.redraw = true
}

// Clear resets all pixels. What is on the terminal is unaffected until the
// next Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// SetFloat sets the pixel under logical position (x, y).
func (c *Canvas) SetFloat(x, y float64, ink Ink) {
	px, py := c.toPixel(x, y)
	c.setPixel(px, py, ink)
}

// FillRect fills a logical rectangle. Anything that covers at least part of
// a pixel is drawn, so small rectangles never vanish.
func (c *Canvas) FillRect(r physics.Rect, ink Ink) {
	x0 := int(math.Floor(r.MinX * c.scaleX))
	x1 := int(math.Ceil(r.MaxX*c.scaleX)) - 1
	y0 := int(math.Floor(r.MinY * c.scaleY))
	y1 := int(math.Ceil(r.MaxY*c.scaleY)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y, ink)
		}
	}
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm in pixel space.
func (c *Canvas) DrawLine(ax, ay, bx, by float64, ink Ink) {
	x1, y1 := c.toPixel(ax, ay)
	x2, y2 := c.toPixel(bx, by)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1, ink)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Cell returns the two sub-pixels of the 0-based terminal cell (col, row)
// relative to the canvas origin.
func (c *Canvas) Cell(col, row int) (top, bottom Ink) {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return InkNone, InkNone
	}
	top = c.pixels[row*2*c.termWidth+col]
	bottom = c.pixels[(row*2+1)*c.termWidth+col]
	return top, bottom
}

// Render writes the changed cells to w as ANSI sequences.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	var fg, bg Ink
	styled := false
	for row := range c.termHeight {
		for col := range c.termWidth {
			top, bottom := c.Cell(col, row)
			cur := cell{top, bottom}
			i := row*c.termWidth + col
			if !c.redraw && c.shown[i] == cur {
				continue
			}
			c.shown[i] = cur

			ch, f, b := Glyph(top, bottom)
			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			if !styled || f != fg || b != bg {
				c.writeStyle(f, b)
				fg, bg, styled = f, b, true
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	if styled {
		c.renderBuf.WriteString("\033[0m")
	}
	c.redraw = false

	if c.renderBuf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) writeStyle(fg, bg Ink) {
	c.renderBuf.WriteString("\033[0")
	if fg != InkNone {
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(ansiFG[fg]), 10))
	}
	if bg != InkNone {
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(ansiFG[bg]+10), 10))
	}
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box just outside the width×height area whose
// 0-based origin is (offsetCol, offsetRow). Sides without room are skipped.
func RenderBorder(w io.Writer, offsetCol, offsetRow, width, height int) error {
	hasH := offsetCol >= 1
	hasV := offsetRow >= 1

	left := offsetCol
	right := offsetCol + width + 1
	top := offsetRow
	bottom := offsetRow + height + 1
	line := strings.Repeat("─", width)

	var buf strings.Builder
	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + line + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(left+1, top) + line)
			buf.WriteString(cursorTo(left+1, bottom) + line)
		}
	}
	if hasH {
		for row := max(top+1, 1); row < bottom; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the number of columns the canvas covers.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the number of rows the canvas covers.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position, offset included.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
