package pixel

import (
	"image/color"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	hudBarColor     = color.RGBA{40, 40, 40, 255}
	hudTextColor    = color.RGBA{120, 220, 220, 255}
	playerColor     = color.RGBA{255, 255, 255, 255}
	enemyColor      = color.RGBA{200, 200, 200, 255}
	shieldColor     = color.RGBA{120, 200, 120, 255}
	shieldWornColor = color.RGBA{70, 130, 70, 255}
	playerShotColor = color.RGBA{255, 255, 255, 255}
	enemyShotColor  = color.RGBA{255, 120, 120, 255}
	bannerColor     = color.RGBA{255, 220, 80, 255}
)

// rect is one filled rectangle in window pixels.
type rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// layoutRects converts the view into filled rectangles, back to front.
func layoutRects(v invaders.View, scale int) []rect {
	s := float32(scale)
	cell := func(x, y int, c color.RGBA) rect {
		return rect{X: float32(x) * s, Y: float32(y) * s, W: s, H: s, Color: c}
	}

	rects := make([]rect, 0, 1+v.EnemyCount()+v.ShieldCount()*invaders.ShieldW*invaders.ShieldH+8)
	rects = append(rects, rect{W: float32(invaders.Width) * s, H: s, Color: hudBarColor})

	for i := range v.ShieldCount() {
		sh := v.Shield(i)
		for dy := range sh.HP {
			for dx, hp := range sh.HP[dy] {
				if hp <= 0 {
					continue
				}
				c := shieldColor
				if hp < invaders.ShieldHP {
					c = shieldWornColor
				}
				rects = append(rects, cell(sh.X+dx, sh.Y+dy, c))
			}
		}
	}

	for i := range v.EnemyCount() {
		e := v.Enemy(i)
		if !e.Alive {
			continue
		}
		rects = append(rects, cell(e.X, e.Y, enemyColor))
	}

	for i := range v.ProjectileCount() {
		p := v.Projectile(i)
		if !p.Active {
			continue
		}
		c := enemyShotColor
		if p.Owner == invaders.OwnerPlayer {
			c = playerShotColor
		}
		rects = append(rects, rect{
			X:     float32(p.X)*s + s/3,
			Y:     float32(p.Y) * s,
			W:     s / 3,
			H:     s,
			Color: c,
		})
	}

	rects = append(rects, cell(v.PlayerX(), v.PlayerRow(), playerColor))
	return rects
}
