package ochoxocho

import (
	"fmt"
	"strings"

	platformcore "github.com/draney98/ochoXocho/internal/core"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

const (
	cellW      = 2 // Terminal columns per board cell
	boardBoxW  = core.Size*cellW + 2
	boardBoxH  = core.Size + 2
	handGap    = 2
	slotRows   = 4 // Label row plus up to three shape rows
	handW      = 3*cellW + 4
	hudHeight  = 3
	minScreenW = boardBoxW + handGap + handW + 4
	minScreenH = hudHeight + core.HandSize*slotRows + 3
)

var colorMap = map[core.Color]platformcore.Color{
	core.ColorNone:   platformcore.ColorDefault,
	core.ColorWhite:  platformcore.ColorBrightWhite,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorOrange: platformcore.ColorOrange,
	core.ColorRed:    platformcore.ColorRed,
	core.ColorPink:   platformcore.ColorPink,
	core.ColorPurple: platformcore.ColorPurple,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorCyan:   platformcore.ColorCyan,
	core.ColorTeal:   platformcore.ColorTeal,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorLime:   platformcore.ColorLime,
	core.ColorBrown:  platformcore.ColorBrown,
}

func screenColor(c core.Color) platformcore.Color {
	if pc, ok := colorMap[c]; ok {
		return pc
	}
	return platformcore.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW := boardBoxW + handGap + handW
	boardX := max(0, (g.screenW-totalW)/2)
	boardY := hudHeight

	g.renderHUD(dst, boardX, totalW)
	g.renderBoard(dst, boardX, boardY)
	g.renderHand(dst, boardX+boardBoxW+handGap, boardY)
	g.renderFooter(dst, boardY+max(boardBoxH, core.HandSize*slotRows))
	g.renderOverlays(dst, boardX, boardY)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen, x, w int) {
	dst.DrawTextCentered(0, g.title, platformcore.ColorBrightWhite)

	score := g.session.Score()
	left := fmt.Sprintf("Score %d", score.Score)
	right := fmt.Sprintf("Best %d", max(g.highScore, score.Score))
	dst.DrawTextColored(x, 1, left, platformcore.ColorYellow)
	dst.DrawTextColored(x+w-len(right), 1, right, platformcore.ColorGray)

	threshold := g.session.Rules().LevelThreshold
	dst.DrawText(x, 2, fmt.Sprintf("Lv %d %s", score.Level, progressBar(score.Progress, threshold, 10)))
	mode := string(g.session.Mode())
	dst.DrawTextColored(x+w-len(mode), 2, mode, platformcore.ColorCyan)
}

// progressBar renders progress out of threshold as a fixed-width bar.
func progressBar(progress, threshold float64, width int) string {
	filled := 0
	if threshold > 0 {
		filled = platformcore.Clamp(int(progress/threshold*float64(width)), 0, width)
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func (g *Game) renderBoard(dst *platformcore.Screen, bx, by int) {
	dst.DrawBox(platformcore.NewRect(bx, by, boardBoxW, boardBoxH), platformcore.ColorGray)

	view := g.session.BoardSnapshot()
	over := g.session.State() == core.StateOver

	var (
		preview  core.Preview
		ghost    []core.Point
		piece    core.Piece
		hasPiece bool
	)
	if !over {
		piece, hasPiece = g.session.Hand().Get(g.slot)
		if hasPiece {
			preview = g.session.PreviewSlot(g.slot, g.cursor)
			ghost = piece.Shape.At(g.cursor)
		}
	}
	wouldClear := core.Lines{Rows: preview.WouldClearRows, Columns: preview.WouldClearColumns}

	for y := range core.Size {
		for x := range core.Size {
			p := core.P(x, y)
			cell := boardCell(view.Cells[y][x])
			if g.flashLeft > 0 && g.flash.Contains(p) {
				cell = platformcore.Cell{Rune: '░', Color: platformcore.ColorBrightWhite}
			}
			if preview.Valid && wouldClear.Contains(p) {
				cell.Attr |= platformcore.AttrReverse
			}
			g.drawCell(dst, bx+1+x*cellW, by+1+y, cell)
		}
	}

	if !hasPiece {
		return
	}
	ghostColor := platformcore.ColorRed
	if preview.Valid {
		ghostColor = screenColor(g.session.Catalog().ColorFor(piece.Index))
	}
	for _, p := range ghost {
		g.drawCell(dst, bx+1+p.X*cellW, by+1+p.Y, platformcore.Cell{
			Rune:  '▓',
			Color: ghostColor,
			Attr:  platformcore.AttrBold,
		})
	}
}

// boardCell converts a board cell to its screen appearance. Blocks darken as
// their freshness decays.
func boardCell(c core.CellView) platformcore.Cell {
	if !c.Occupied {
		return platformcore.Cell{Rune: '·', Color: platformcore.ColorDarkGray}
	}
	cell := platformcore.Cell{Rune: '█', Color: screenColor(c.Color)}
	if c.Freshness < 0.5 {
		cell.Attr |= platformcore.AttrFaint
	}
	return cell
}

// drawCell draws one board cell cellW columns wide. Empty cells get a single
// dot followed by a space.
func (g *Game) drawCell(dst *platformcore.Screen, sx, sy int, c platformcore.Cell) {
	dst.SetCell(sx, sy, c)
	if c.Rune == '·' {
		c.Rune = ' '
	}
	dst.SetCell(sx+1, sy, c)
}

func (g *Game) renderHand(dst *platformcore.Screen, hx, hy int) {
	hand := g.session.HandSnapshot()
	for i, slot := range hand.Slots {
		y := hy + i*slotRows
		selected := i == g.slot && slot.Filled
		marker := "  "
		if selected {
			marker = "> "
		}
		label := fmt.Sprintf("%s%d", marker, i+1)
		if !slot.Filled {
			dst.DrawTextColored(hx, y, label+"  --", platformcore.ColorDarkGray)
			continue
		}
		dst.DrawTextColored(hx, y, fmt.Sprintf("%s  %dpt", label, slot.BaseValue), platformcore.ColorGray)

		cell := platformcore.Cell{Rune: '█', Color: screenColor(slot.Color)}
		if !selected {
			cell.Attr |= platformcore.AttrFaint
		}
		for _, p := range slot.Shape.Cells() {
			g.drawCell(dst, hx+2+p.X*cellW, y+1+p.Y, cell)
		}
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	if g.messageLeft > 0 && g.message != "" {
		dst.DrawTextCentered(y, g.message, platformcore.ColorYellow)
	}
	dst.DrawTextCentered(y+1, "move wasd  slot 1-3/tab  place enter  auto x  mode m  pause p  quit q", platformcore.ColorDarkGray)
}

func (g *Game) renderOverlays(dst *platformcore.Screen, bx, by int) {
	switch {
	case g.session.State() == core.StateOver:
		score := g.session.Score()
		g.drawPanel(dst, bx, by, []string{
			"GAME OVER",
			fmt.Sprintf("Score %d", score.Score),
			fmt.Sprintf("Cleanup +%d", g.cleanupTotal),
			"R restart",
		})
	case g.paused:
		g.drawPanel(dst, bx, by, []string{"PAUSED", "P resume"})
	}
}

// drawPanel draws a boxed message centered on the board.
func (g *Game) drawPanel(dst *platformcore.Screen, bx, by int, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	w += 4
	h := len(lines) + 2
	x := bx + (boardBoxW-w)/2
	y := by + (boardBoxH-h)/2

	dst.DrawRect(platformcore.NewRect(x, y, w, h), platformcore.Cell{Rune: ' '})
	dst.DrawBox(platformcore.NewRect(x, y, w, h), platformcore.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextColored(x+(w-len(l))/2, y+1+i, l, platformcore.ColorBrightWhite)
	}
}
