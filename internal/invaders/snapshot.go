package invaders

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	PlayerX      int
	Lives        int
	Score        int
	Level        int
	Paused       bool
	GameOver     bool
	AliveEnemies int
	EnemyCount   int
	EnemyDir     int

	// Step timer in microseconds so the hash stays integer-only
	StepTimerMicros int

	// Enemy states (each enemy is 3 ints: X, Y, Alive)
	EnemyData []int

	// Active projectiles (each is 4 ints: X, Y, DY, Owner)
	ProjectileData []int

	// Shield cells, row-major per shield
	ShieldData []int

	RNGState uint32
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, 0, g.enemyCount*3)
	for i := 0; i < g.enemyCount; i++ {
		e := g.enemies[i]
		alive := 0
		if e.Alive {
			alive = 1
		}
		enemyData = append(enemyData, e.X, e.Y, alive)
	}

	var projectileData []int
	for _, p := range g.projectiles {
		if p.Active {
			projectileData = append(projectileData, p.X, p.Y, p.DY, int(p.Owner))
		}
	}

	shieldData := make([]int, 0, MaxShields*ShieldW*ShieldH)
	for _, sh := range g.shields {
		for y := range sh.HP {
			shieldData = append(shieldData, sh.HP[y][:]...)
		}
	}

	return Snapshot{
		Tick:            g.tick,
		PlayerX:         g.playerX,
		Lives:           g.lives,
		Score:           g.score,
		Level:           g.level,
		Paused:          g.paused,
		GameOver:        g.gameOver,
		AliveEnemies:    g.aliveEnemies(),
		EnemyCount:      g.enemyCount,
		EnemyDir:        g.enemyDir,
		StepTimerMicros: int(g.enemyStepTimer * 1e6),
		EnemyData:       enemyData,
		ProjectileData:  projectileData,
		ShieldData:      shieldData,
		RNGState:        g.rng.State(),
	}
}

// ActiveProjectiles returns the number of active projectiles in the snapshot.
func (snap *Snapshot) ActiveProjectiles() int {
	return len(snap.ProjectileData) / 4
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PlayerX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + boolHash(snap.Paused)
	h = h*31 + boolHash(snap.GameOver)
	h = h*31 + uint64(snap.AliveEnemies)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyDir)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StepTimerMicros) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ShieldData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.RNGState)

	return h
}

func boolHash(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
