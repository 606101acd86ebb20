package blocks

import (
	"fmt"
	"time"

	"github.com/blockfall-game/blockfall/internal/core"
	"github.com/blockfall-game/blockfall/internal/tetris"
)

// formatElapsed renders a play duration as m:ss.
func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

const (
	hudHeight      = 2
	sidePanelWidth = 14
	// Each playfield cell is drawn two runes wide to look square.
	cellWidth = 2
)

// kindColors maps engine color IDs (kind+1) to screen colors.
var kindColors = [...]core.Color{
	core.ColorDefault, // empty
	core.ColorCyan,    // I
	core.ColorYellow,  // O
	core.ColorMagenta, // T
	core.ColorGreen,   // S
	core.ColorRed,     // Z
	core.ColorBlue,    // J
	core.ColorOrange,  // L
}

func colorFor(id tetris.ColorID) core.Color {
	if int(id) < len(kindColors) {
		return kindColors[id]
	}
	return core.ColorWhite
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	fieldX, fieldY := g.fieldOrigin(dst)

	// Playfield frame
	frameW := g.cfg.Board.Width*cellWidth + 2
	frameH := g.cfg.Board.Height + 2
	dst.DrawBox(core.NewRect(fieldX-1, fieldY-1, frameW, frameH))

	g.renderBoard(dst, fieldX, fieldY)
	if g.cfg.Gameplay.GhostPiece {
		g.renderGhost(dst, fieldX, fieldY)
	}
	g.renderActive(dst, fieldX, fieldY)
	g.renderSidePanel(dst, fieldX+frameW, fieldY)

	switch {
	case g.won:
		g.renderOverlay(dst, "Finished!", fmt.Sprintf("Time: %s  Score: %d", formatElapsed(g.Elapsed()), g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// fieldOrigin returns the top-left screen position of the playfield,
// centered horizontally with room for the side panel.
func (g *Game) fieldOrigin(dst *core.Screen) (int, int) {
	totalW := g.cfg.Board.Width*cellWidth + 2 + sidePanelWidth
	x := (dst.Width()-totalW)/2 + 1
	if x < 1 {
		x = 1
	}
	return x, hudHeight + 1
}

func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeSprint {
		remaining := g.cfg.Gameplay.SprintLines - g.lines
		if remaining < 0 {
			remaining = 0
		}
		hud = fmt.Sprintf(" %s - Score: %d  Lines left: %d  Time: %s", g.Title(), g.score, remaining, formatElapsed(g.Elapsed()))
	} else {
		hud = fmt.Sprintf(" %s - Score: %d  Lines: %d  Level: %d", g.Title(), g.score, g.lines, g.level)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderBoard(dst *core.Screen, fieldX, fieldY int) {
	board := g.machine.Board()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell, err := board.Cell(x, y)
			if err != nil || !cell.Filled {
				continue
			}
			g.drawCell(dst, fieldX, fieldY, x, y, '█', colorFor(cell.Color))
		}
	}
}

func (g *Game) renderGhost(dst *core.Screen, fieldX, fieldY int) {
	piece, ok := g.machine.Active()
	if !ok {
		return
	}
	distance := tetris.DropDistance(g.machine.Board(), piece)
	if distance == 0 {
		return
	}
	ghost := piece.Translated(0, distance)
	for _, c := range ghost.Cells() {
		g.drawCell(dst, fieldX, fieldY, c[0], c[1], '░', core.ColorGray)
	}
}

func (g *Game) renderActive(dst *core.Screen, fieldX, fieldY int) {
	piece, ok := g.machine.Active()
	if !ok {
		return
	}
	color := colorFor(piece.Kind.Color())
	for _, c := range piece.Cells() {
		g.drawCell(dst, fieldX, fieldY, c[0], c[1], '█', color)
	}
}

// drawCell paints one playfield cell two runes wide.
func (g *Game) drawCell(dst *core.Screen, fieldX, fieldY, x, y int, r rune, color core.Color) {
	if y < 0 || y >= g.cfg.Board.Height {
		return
	}
	px := fieldX + x*cellWidth
	py := fieldY + y
	dst.SetColored(px, py, r, color)
	dst.SetColored(px+1, py, r, color)
}

func (g *Game) renderSidePanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawText(panelX+2, panelY, "Next")

	kinds := g.machine.NextKinds(g.cfg.Gameplay.PreviewCount)
	rowY := panelY + 2
	for _, kind := range kinds {
		g.renderPreviewPiece(dst, panelX+2, rowY, kind)
		rowY += 3
	}

	dst.DrawText(panelX+2, rowY+1, fmt.Sprintf("Level %d", g.level))
	dst.DrawText(panelX+2, rowY+2, fmt.Sprintf("Lines %d", g.lines))
}

// renderPreviewPiece draws a kind in its spawn rotation at the given
// screen position.
func (g *Game) renderPreviewPiece(dst *core.Screen, px, py int, kind tetris.Kind) {
	color := colorFor(kind.Color())
	for _, off := range kind.Offsets(0) {
		x := px + off.DX*cellWidth
		y := py + off.DY
		dst.SetColored(x, y, '█', color)
		dst.SetColored(x+1, y, '█', color)
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
