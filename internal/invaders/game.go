// Package invaders implements the fixed-timestep Space Invaders simulation:
// the entity model, formation movement, collision resolution, level
// progression and the command layer. It has no knowledge of any display;
// backends read state through the View interface.
package invaders

// View is the read-only face of a Game handed to render backends.
type View interface {
	PlayerX() int
	PlayerRow() int
	Lives() int
	Score() int
	Level() int
	Paused() bool
	GameOver() bool

	EnemyCount() int
	Enemy(i int) Enemy
	ShieldCount() int
	Shield(i int) Shield
	ProjectileCount() int
	Projectile(i int) Projectile
}

// Game is the aggregate root of the simulation. The zero value is not ready
// for use; create instances with New.
type Game struct {
	playerX int
	lives   int
	score   int
	level   int

	paused   bool
	gameOver bool

	enemies        [MaxEnemies]Enemy
	enemyCount     int
	enemyDir       int
	enemyStepTimer float64
	enemyStepDelay float64

	shields     [MaxShields]Shield
	projectiles [MaxProjectiles]Projectile

	rng  XorShift32
	tick uint64

	opts options
}

type options struct {
	seed       uint32
	lives      int
	startLevel int
}

// Option customizes a new Game.
type Option func(*options)

// WithSeed sets the RNG seed. Zero selects DefaultSeed.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLives sets the starting number of lives. Values below 1 are ignored.
func WithLives(lives int) Option {
	return func(o *options) {
		if lives >= 1 {
			o.lives = lives
		}
	}
}

// WithStartLevel sets the first level. Values below 1 are ignored.
func WithStartLevel(level int) Option {
	return func(o *options) {
		if level >= 1 {
			o.startLevel = level
		}
	}
}

// New creates a game and lays out its first level.
func New(opts ...Option) *Game {
	g := &Game{
		opts: options{
			seed:       DefaultSeed,
			lives:      defaultLives,
			startLevel: 1,
		},
	}
	for _, opt := range opts {
		opt(&g.opts)
	}
	g.Init()
	return g
}

// Init discards all state and starts a fresh game with the configured seed.
func (g *Game) Init() {
	opts := g.opts
	*g = Game{opts: opts}

	g.playerX = Width / 2
	g.lives = opts.lives
	g.score = 0
	g.level = opts.startLevel
	g.rng = NewXorShift32(opts.seed)

	g.ResetLevel()
}

// ResetLevel rebuilds the formation, shields and projectile pool for the
// current level. Score, lives, flags and the RNG stream are left untouched.
func (g *Game) ResetLevel() {
	g.enemyCount = 0
	for r := 0; r < formationRows; r++ {
		for c := 0; c < formationCols; c++ {
			if g.enemyCount >= MaxEnemies {
				break
			}
			g.enemies[g.enemyCount] = Enemy{
				X:     formationStartX + c*formationSpacing,
				Y:     formationStartY + r*formationRowGap,
				Alive: true,
			}
			g.enemyCount++
		}
	}
	for i := g.enemyCount; i < MaxEnemies; i++ {
		g.enemies[i] = Enemy{}
	}

	g.enemyDir = 1
	g.enemyStepTimer = 0
	g.enemyStepDelay = max(minLevelDelay, baseStepDelay-stepDelayPerLvl*float64(g.level-1))

	g.resetShields()
	g.clearProjectiles()
}

func (g *Game) resetShields() {
	spacing := Width / (MaxShields + 1)
	for s := range g.shields {
		sh := &g.shields[s]
		sh.X = spacing*(s+1) - ShieldW/2
		sh.Y = shieldRow
		for y := range sh.HP {
			for x := range sh.HP[y] {
				sh.HP[y][x] = ShieldHP
			}
		}
	}
}

func (g *Game) clearProjectiles() {
	for i := range g.projectiles {
		g.projectiles[i] = Projectile{}
	}
}

// aliveEnemies counts enemies still alive in this level.
func (g *Game) aliveEnemies() int {
	alive := 0
	for i := 0; i < g.enemyCount; i++ {
		if g.enemies[i].Alive {
			alive++
		}
	}
	return alive
}

// spawnProjectile activates the first free slot. It reports false when the
// pool is full.
func (g *Game) spawnProjectile(x, y, dy int, owner Owner) bool {
	for i := range g.projectiles {
		p := &g.projectiles[i]
		if p.Active {
			continue
		}
		*p = Projectile{X: x, Y: y, Active: true, DY: dy, Owner: owner}
		return true
	}
	return false
}

// PlayerX returns the player's column.
func (g *Game) PlayerX() int { return g.playerX }

// PlayerRow returns the row the player occupies.
func (g *Game) PlayerRow() int { return playerRow }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Tick returns the number of Update calls that advanced the simulation.
func (g *Game) Tick() uint64 { return g.tick }

// AliveEnemies returns the number of enemies still alive.
func (g *Game) AliveEnemies() int { return g.aliveEnemies() }

// EnemyCount returns the number of enemy slots populated this level.
func (g *Game) EnemyCount() int { return g.enemyCount }

// Enemy returns a copy of enemy slot i. Out-of-range slots are zero.
func (g *Game) Enemy(i int) Enemy {
	if i < 0 || i >= g.enemyCount {
		return Enemy{}
	}
	return g.enemies[i]
}

// ShieldCount returns the number of shields.
func (g *Game) ShieldCount() int { return MaxShields }

// Shield returns a copy of shield i. Out-of-range indexes are zero.
func (g *Game) Shield(i int) Shield {
	if i < 0 || i >= MaxShields {
		return Shield{}
	}
	return g.shields[i]
}

// ProjectileCount returns the size of the projectile pool.
func (g *Game) ProjectileCount() int { return MaxProjectiles }

// Projectile returns a copy of projectile slot i. Out-of-range slots are zero.
func (g *Game) Projectile(i int) Projectile {
	if i < 0 || i >= MaxProjectiles {
		return Projectile{}
	}
	return g.projectiles[i]
}

// StepDelay returns the base formation step interval for this level.
func (g *Game) StepDelay() float64 { return g.enemyStepDelay }

// EnemyDir returns the formation's horizontal direction (-1 or +1).
func (g *Game) EnemyDir() int { return g.enemyDir }

var _ View = (*Game)(nil)
