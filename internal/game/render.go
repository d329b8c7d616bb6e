package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = board.Size*cellWidth + 1
	boardH = board.Size*cellHeight + 1

	minScreenW = boardW + 4
	minScreenH = hudHeight + 1 + boardH + 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderDecision(dst, boardX, boardY+boardH+1)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and mode line.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.state.Score))

	info := fmt.Sprintf("Max: %d", g.state.MaxTile())
	dst.DrawText(max(boardX+boardW-len(info), boardX), 1, info)

	mode := fmt.Sprintf("Moves: %d  Auto: %s", g.state.Moves, onOff(g.autoplay))
	if g.player == nil {
		mode = fmt.Sprintf("Moves: %d", g.state.Moves)
	}
	dst.DrawText(boardX+(boardW-len(mode))/2, 2, mode)
}

// renderBoard draws the 4x4 grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range board.Size + 1 {
		for x := range board.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == board.Size:
				corner = '┐'
			case y == board.Size && x == 0:
				corner = '└'
			case y == board.Size && x == board.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == board.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == board.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < board.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < board.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y := range board.Size {
		for x := range board.Size {
			val := g.state.Board[y][x]
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			if val == 0 {
				dst.SetColor(cellX+(cellWidth-1)/2, cellY, '·', core.ColorGray)
				continue
			}

			s := strconv.Itoa(val)
			pad := max((cellWidth-1-len(s))/2, 0)
			dst.DrawTextColor(cellX+pad, cellY, s, core.TileColor(val))
		}
	}
}

// renderDecision shows the hint or the last autoplay decision.
func (g *Game) renderDecision(dst *core.Screen, x, y int) {
	var d Decision
	label := ""
	switch {
	case g.hasHint:
		d, label = g.hint, "Hint"
	case g.hasLast:
		d, label = g.last, "AI"
	default:
		return
	}

	if !d.Found {
		dst.DrawText(x, y, label+": no move")
		return
	}
	dst.DrawTextColor(x, y, fmt.Sprintf("%s: %s", label, d.Dir), core.ColorCyan)

	if !d.Scored {
		return
	}
	parts := make([]string, 0, len(board.Directions))
	for _, dir := range board.Directions {
		v := "-"
		if d.Legal[dir] {
			v = compact(d.Values[dir])
		}
		parts = append(parts, fmt.Sprintf("%c:%s", dir.String()[0], v))
	}
	dst.DrawText(x, y+1, strings.Join(parts, " "))
}

// renderOverlays draws pause and game over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, area, "PAUSED", "Press P to resume")
	case g.gameOver:
		drawOverlay(dst, area, "GAME OVER", fmt.Sprintf("Max tile: %d", g.state.MaxTile()), "Press R to restart")
	case g.stuck:
		drawOverlay(dst, area, "NO MOVE", "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// compact formats a search value with a k/M suffix.
func compact(v float64) string {
	switch {
	case v >= 1e6 || v <= -1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3 || v <= -1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.player == nil {
		return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
	}
	return "Arrows/WASD: Move | Space: Autoplay | ?: Hint | P: Pause | R: Restart | Q: Quit"
}
