package loop

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/match"
)

// hudRows are the rows taken from the render area for the status line on
// top and the clock/help line at the bottom.
const hudRows = 2

// ansiRenderer draws a Session as ANSI escape sequences.
type ansiRenderer struct {
	canvas   *draw.Canvas
	out      *draw.ChunkWriter
	termSize draw.TermSizeFunc

	termWidth  int
	termHeight int
	screen     Screen
	drawn      bool
}

func newANSIRenderer(w io.Writer, termSize draw.TermSizeFunc) *ansiRenderer {
	return &ansiRenderer{
		canvas:   draw.NewScaledCanvas(0, 0, config.ArenaWidth, config.ArenaHeight),
		out:      draw.NewChunkWriter(w),
		termSize: termSize,
	}
}

// frame draws one frame. The whole screen is cleared when the terminal
// size or the session screen changed; otherwise only the changed canvas
// cells and the HUD are rewritten.
func (r *ansiRenderer) frame(s *Session) error {
	tw, th, err := r.termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	if !r.drawn || tw != r.termWidth || th != r.termHeight || s.Screen() != r.screen {
		r.out.ClearScreen()
		r.canvas.ForceRedraw()
		r.termWidth, r.termHeight, r.screen = tw, th, s.Screen()
		r.drawn = true
	}

	width, height, offCol, offRow := draw.Fit(tw, th, config.MaxRenderCols, config.MaxRenderRows)
	r.canvas.Resize(width, height-hudRows)
	r.canvas.SetOffset(offCol, offRow+1)
	r.canvas.Clear()

	m := s.Match()
	showArena := m != nil && (s.Screen() == ScreenPlaying || s.Screen() == ScreenOver)
	var v match.View
	if showArena {
		v = m.View()
		PaintArena(r.canvas, v)
	}

	if err := r.canvas.Render(r.out); err != nil {
		return err
	}
	if err := draw.RenderBorder(r.out, offCol, offRow, width, height); err != nil {
		return err
	}

	if showArena {
		r.drawHUD(v, offCol, offRow, width, height)
	}
	r.drawLines(s.Lines(), offCol, offRow, width, height)

	return r.out.Flush()
}

func (r *ansiRenderer) drawHUD(v match.View, offCol, offRow, width, height int) {
	top := offRow + 1
	left := StatusLine(v.Combatants[0])
	right := StatusLine(v.Combatants[1])
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)

	r.out.WriteAt(offCol+1, top, strings.Repeat(" ", width))
	r.out.WriteInkAt(offCol+1, top, PlayerInk(match.PlayerOne), left)
	r.out.WriteInkAt(offCol+1+max(gap, 1)+utf8.RuneCountInString(left), top, PlayerInk(match.PlayerTwo), right)

	bottom := offRow + height
	status := clockLine(v.Tick, config.TickRate)
	if v.Outcome.Concluded {
		status += "  " + v.Outcome.String()
	}
	r.out.WriteAt(offCol+1, bottom, padRight(status, width))
}

// drawLines centres text lines over the render area.
func (r *ansiRenderer) drawLines(lines []string, offCol, offRow, width, height int) {
	if len(lines) == 0 {
		return
	}
	row := offRow + 1 + (height-len(lines))/2
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		col := offCol + 1 + max((width-n)/2, 0)
		r.out.WriteAt(col, row+i, line)
	}
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
