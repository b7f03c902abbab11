package creeps

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// Visual characters for rendering
const (
	PlayerRight = '►'
	PlayerLeft  = '◄'
	PlayerUp    = '▲'
	PlayerDown  = '▼'
	PlayerStep  = '•' // Alternate walk frame
)

// toCell converts a world position to a screen cell.
func (g *Game) toCell(p core.Vec2) (int, int) {
	// Floor so positions just past the left or top edge land off-screen
	return int(math.Floor(p.X / g.cfg.World.CellWidth)), int(math.Floor(p.Y / g.cfg.World.CellHeight))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, m := range g.mobs.All() {
		if m.Freed() {
			continue
		}
		x, y := g.toCell(m.Position)
		dst.SetColor(x, y, m.Glyph(), m.Color())
	}

	if g.player.Visible() {
		x, y := g.toCell(g.player.Position())
		// The clamped position may sit exactly on the far edge
		x = core.Clamp(x, 0, dst.Width()-1)
		y = core.Clamp(y, 0, dst.Height()-1)
		dst.SetColor(x, y, playerGlyph(g.player.Animation()), core.ColorBrightYellow)
	}

	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// playerGlyph picks the rune for the player's animation state.
func playerGlyph(a Animation) rune {
	if a.Playing && a.Frame == 1 {
		return PlayerStep
	}
	if a.Name == AnimUp {
		if a.FlipV {
			return PlayerDown
		}
		return PlayerUp
	}
	if a.FlipH {
		return PlayerLeft
	}
	return PlayerRight
}

// renderHUD draws the score, the centre message and the start button.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColor(0, fmt.Sprintf(" %s ", g.hud.ScoreText()), core.ColorBrightWhite)

	mid := dst.Height() / 2
	if g.hud.MessageVisible() {
		color := core.ColorBrightWhite
		if g.hud.Message() == MessageGameOver {
			color = core.ColorBrightRed
		}
		dst.DrawTextCenteredColor(mid-1, g.hud.MessageText(), color)
	}

	if g.hud.StartButtonVisible() {
		label := fmt.Sprintf("[ %s ]", g.hud.StartButtonText())
		dst.DrawTextCenteredColor(mid+2, label, core.ColorBrightGreen)
		dst.DrawTextCenteredColor(mid+3, "Enter/Space", core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
