package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Glyphs used by the cell renderer.
const (
	PlayerGlyph     = 'A'
	EnemyGlyph      = 'W'
	ShieldFullGlyph = '#'
	ShieldWornGlyph = '+'
	PlayerShotGlyph = '|'
	EnemyShotGlyph  = '!'
	BorderHoriz     = '-'
	BorderVert      = '|'
)

// Entity colors shared by the cell backends.
const (
	PlayerColor     = core.ColorBrightWhite
	EnemyColor      = core.ColorGray
	ShieldColor     = core.ColorGreen
	PlayerShotColor = core.ColorYellow
	EnemyShotColor  = core.ColorBrightRed
	HUDColor        = core.ColorCyan
	BorderColor     = core.ColorWhite
)

const (
	pausedBanner   = "[ PAUSED ]"
	gameOverBanner = "[ GAME OVER ]"
)

// HUDText returns the status line shown above the playfield.
func HUDText(v View) string {
	return fmt.Sprintf("Space Invaders  Score:%d  Lives:%d  Level:%d  [q quit, p pause, space shoot]",
		v.Score(), v.Lives(), v.Level())
}

// Banner returns the overlay text for the current state, or "".
func Banner(v View) string {
	switch {
	case v.GameOver():
		return gameOverBanner
	case v.Paused():
		return pausedBanner
	}
	return ""
}

// Render draws the view into dst. dst should be at least Width x Height;
// anything outside it is clipped.
func Render(dst *core.Screen, v View) {
	dst.Clear()

	dst.DrawText(0, 0, HUDText(v), HUDColor)

	dst.DrawHLine(0, 1, Width, BorderHoriz, BorderColor)
	dst.DrawHLine(0, Height-1, Width, BorderHoriz, BorderColor)
	dst.DrawVLine(0, 2, Height-3, BorderVert, BorderColor)
	dst.DrawVLine(Width-1, 2, Height-3, BorderVert, BorderColor)

	renderShields(dst, v)

	for i := 0; i < v.EnemyCount(); i++ {
		e := v.Enemy(i)
		if e.Alive {
			dst.SetColored(e.X, e.Y, EnemyGlyph, EnemyColor)
		}
	}

	for i := 0; i < v.ProjectileCount(); i++ {
		p := v.Projectile(i)
		if !p.Active {
			continue
		}
		if p.Owner == OwnerPlayer {
			dst.SetColored(p.X, p.Y, PlayerShotGlyph, PlayerShotColor)
		} else {
			dst.SetColored(p.X, p.Y, EnemyShotGlyph, EnemyShotColor)
		}
	}

	dst.SetColored(v.PlayerX(), v.PlayerRow(), PlayerGlyph, PlayerColor)

	if banner := Banner(v); banner != "" {
		dst.DrawText(Width/2-6, Height/2, banner, core.ColorBrightWhite)
	}
}

// renderShields draws intact shield cells that fall inside the border.
func renderShields(dst *core.Screen, v View) {
	for s := 0; s < v.ShieldCount(); s++ {
		sh := v.Shield(s)
		for y := range sh.HP {
			for x, hp := range sh.HP[y] {
				if hp <= 0 {
					continue
				}
				rx, ry := sh.X+x, sh.Y+y
				if rx <= 0 || rx >= Width-1 || ry <= 1 || ry >= Height-1 {
					continue
				}
				glyph := ShieldWornGlyph
				if hp >= ShieldHP {
					glyph = ShieldFullGlyph
				}
				dst.SetColored(rx, ry, glyph, ShieldColor)
			}
		}
	}
}
