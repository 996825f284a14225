package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/loop"
	"github.com/tomz197/arena/internal/match"
)

var inkColors = [...]tcell.Color{
	draw.InkNone:    tcell.ColorDefault,
	draw.InkWhite:   tcell.ColorWhite,
	draw.InkGray:    tcell.ColorGray,
	draw.InkRed:     tcell.ColorRed,
	draw.InkBlue:    tcell.ColorBlue,
	draw.InkYellow:  tcell.ColorYellow,
	draw.InkCyan:    tcell.ColorAqua,
	draw.InkGreen:   tcell.ColorGreen,
	draw.InkMagenta: tcell.ColorPurple,
}

func inkStyle(fg, bg draw.Ink) tcell.Style {
	return tcell.StyleDefault.Foreground(inkColors[fg]).Background(inkColors[bg])
}

// painter draws a session on a tcell screen. The arena is rasterised by the
// shared half-block canvas and copied cell by cell.
type painter struct {
	screen tcell.Screen
	canvas *draw.Canvas
}

func newPainter(screen tcell.Screen) *painter {
	return &painter{
		screen: screen,
		canvas: draw.NewScaledCanvas(0, 0, config.ArenaWidth, config.ArenaHeight),
	}
}

func (p *painter) frame(s *loop.Session) {
	tw, th := p.screen.Size()
	width, height, offCol, offRow := draw.Fit(tw, th, config.MaxRenderCols, config.MaxRenderRows)

	p.screen.Clear()
	p.canvas.Resize(width, height-2)
	p.canvas.Clear()

	m := s.Match()
	showArena := m != nil && (s.Screen() == loop.ScreenPlaying || s.Screen() == loop.ScreenOver)
	if showArena {
		v := m.View()
		loop.PaintArena(p.canvas, v)
		p.copyCanvas(offCol, offRow+1)
		p.hud(v, offCol, offRow, width, height)
	}
	p.border(offCol, offRow, width, height)

	lines := s.Lines()
	top := offRow + (height-len(lines))/2
	for i, line := range lines {
		n := len([]rune(line))
		p.text(offCol+max((width-n)/2, 0), top+i, tcell.StyleDefault, line)
	}

	p.screen.Show()
}

func (p *painter) copyCanvas(offCol, offRow int) {
	for row := range p.canvas.TerminalHeight() {
		for col := range p.canvas.TerminalWidth() {
			top, bottom := p.canvas.Cell(col, row)
			if top == draw.InkNone && bottom == draw.InkNone {
				continue
			}
			ch, fg, bg := draw.Glyph(top, bottom)
			p.screen.SetContent(offCol+col, offRow+row, ch, nil, inkStyle(fg, bg))
		}
	}
}

func (p *painter) hud(v match.View, offCol, offRow, width, height int) {
	left := loop.StatusLine(v.Combatants[0])
	right := loop.StatusLine(v.Combatants[1])
	p.text(offCol, offRow, inkStyle(loop.PlayerInk(match.PlayerOne), draw.InkNone), left)
	p.text(offCol+width-len([]rune(right)), offRow, inkStyle(loop.PlayerInk(match.PlayerTwo), draw.InkNone), right)

	if v.Outcome.Concluded {
		p.text(offCol, offRow+height-1, tcell.StyleDefault, v.Outcome.String())
	}
}

// border boxes the render area when the screen has room around it.
func (p *painter) border(offCol, offRow, width, height int) {
	if offCol < 1 || offRow < 1 {
		return
	}
	style := tcell.StyleDefault
	left, right := offCol-1, offCol+width
	top, bottom := offRow-1, offRow+height
	for x := offCol; x < right; x++ {
		p.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		p.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := offRow; y < bottom; y++ {
		p.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		p.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	p.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	p.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	p.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	p.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (p *painter) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
