package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Playfield geometry and capacities shared with every backend.
const (
	Width  = 80
	Height = 24

	MaxEnemies     = 60
	MaxProjectiles = 128
	MaxShields     = 4

	ShieldW  = 8
	ShieldH  = 3
	ShieldHP = 2

	ScorePerEnemy = 10
)

// Formation layout and pacing.
const (
	formationRows    = 5
	formationCols    = 10
	formationStartX  = 10
	formationStartY  = 2
	formationSpacing = 5
	formationRowGap  = 2

	baseStepDelay    = 0.55
	stepDelayPerLvl  = 0.05
	minLevelDelay    = 0.12
	minStepDelay     = 0.06
	thinningSpeedup  = 0.55
	invasionRow      = Height - 4
	playerRow        = Height - 2
	shieldRow        = Height - 6
	defaultLives     = 3
	fireChanceBase   = 800
	fireChancePerLvl = 40
	fireChancePerGap = 6
	fireChanceMin    = 120
)

// Owner identifies which side fired a projectile.
type Owner int

const (
	OwnerEnemy Owner = iota
	OwnerPlayer
)

// String returns a readable owner name.
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Enemy is one slot of the formation. Dead enemies keep their slot.
type Enemy struct {
	X, Y  int
	Alive bool
}

// Projectile is one slot of the projectile pool.
type Projectile struct {
	X, Y   int
	Active bool
	DY     int // -1 moves up (player), +1 moves down (enemy)
	Owner  Owner
}

// Shield is a destructible block of ShieldW x ShieldH cells.
// Each cell holds durability in [0, ShieldHP].
type Shield struct {
	X, Y int
	HP   [ShieldH][ShieldW]int
}

// Footprint returns the rectangle covered by the shield.
func (s Shield) Footprint() core.Rect {
	return core.NewRect(s.X, s.Y, ShieldW, ShieldH)
}

// CellHP returns the durability at the absolute cell (x, y), or 0 when the
// cell is outside the shield.
func (s Shield) CellHP(x, y int) int {
	fp := s.Footprint()
	if !fp.Contains(x, y) {
		return 0
	}
	lx, ly := fp.Local(x, y)
	return s.HP[ly][lx]
}

// absorb consumes one point of durability at (x, y) if the cell is intact.
func (s *Shield) absorb(x, y int) bool {
	fp := s.Footprint()
	if !fp.Contains(x, y) {
		return false
	}
	lx, ly := fp.Local(x, y)
	if s.HP[ly][lx] <= 0 {
		return false
	}
	s.HP[ly][lx]--
	return true
}
