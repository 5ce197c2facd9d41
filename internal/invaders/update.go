package invaders

// Events reports what happened during one Update call.
type Events uint8

const (
	EventEnemyKilled Events = 1 << iota
	EventPlayerHit
	EventEnemyFired
	EventLevelCleared
	EventInvaded
	EventGameOver
)

// Has reports whether every bit in e is set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Update advances the simulation by dt seconds. It is a no-op while paused or
// after game over.
func (g *Game) Update(dt float64) Events {
	if g.paused || g.gameOver {
		return 0
	}
	g.tick++

	var ev Events
	if g.stepFormation(dt) {
		return ev | EventInvaded | EventGameOver
	}
	if g.enemyShoot() {
		ev |= EventEnemyFired
	}
	ev |= g.updateProjectiles()
	if g.gameOver {
		return ev | EventGameOver
	}

	if g.aliveEnemies() == 0 {
		g.level++
		g.ResetLevel()
		ev |= EventLevelCleared
	}
	return ev
}

// stepFormation accumulates dt and performs every formation step that is due.
// It reports true when the formation reached the invasion row.
func (g *Game) stepFormation(dt float64) bool {
	alive := g.aliveEnemies()
	if alive == 0 || g.enemyCount == 0 {
		return false
	}

	accel := 1 - float64(alive)/float64(g.enemyCount)
	delay := max(minStepDelay, g.enemyStepDelay*(1-thinningSpeedup*accel))

	g.enemyStepTimer += dt
	for g.enemyStepTimer >= delay {
		g.enemyStepTimer -= delay
		g.stepOnce()
		if g.lowestEnemyRow() >= invasionRow {
			g.gameOver = true
			return true
		}
	}
	return false
}

// stepOnce moves the formation one cell sideways, or drops it a row and
// reverses when either edge would be breached.
func (g *Game) stepOnce() {
	minX, maxX := Width, -1
	for i := 0; i < g.enemyCount; i++ {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		minX = min(minX, e.X)
		maxX = max(maxX, e.X)
	}

	nextMin := minX + g.enemyDir
	nextMax := maxX + g.enemyDir
	if nextMin <= 1 || nextMax >= Width-2 {
		g.enemyDir = -g.enemyDir
		for i := 0; i < g.enemyCount; i++ {
			if g.enemies[i].Alive {
				g.enemies[i].Y++
			}
		}
		return
	}

	for i := 0; i < g.enemyCount; i++ {
		if g.enemies[i].Alive {
			g.enemies[i].X += g.enemyDir
		}
	}
}

func (g *Game) lowestEnemyRow() int {
	lowest := -1
	for i := 0; i < g.enemyCount; i++ {
		if g.enemies[i].Alive {
			lowest = max(lowest, g.enemies[i].Y)
		}
	}
	return lowest
}

// enemyShoot makes at most one fire attempt. It reports whether a projectile
// was spawned.
func (g *Game) enemyShoot() bool {
	alive := g.aliveEnemies()
	if alive == 0 {
		return false
	}

	chance := max(fireChanceMin, fireChanceBase-g.level*fireChancePerLvl-(MaxEnemies-alive)*fireChancePerGap)
	if g.rng.Range(0, chance) != 0 {
		return false
	}

	start := g.rng.Range(0, g.enemyCount-1)
	for k := 0; k < g.enemyCount; k++ {
		e := g.enemies[(start+k)%g.enemyCount]
		if !e.Alive {
			continue
		}
		return g.spawnProjectile(e.X, e.Y+1, 1, OwnerEnemy)
	}
	return false
}

// updateProjectiles moves every active projectile and resolves its collisions.
func (g *Game) updateProjectiles() Events {
	var ev Events
	for i := range g.projectiles {
		p := &g.projectiles[i]
		if !p.Active {
			continue
		}

		p.Y += p.DY
		if p.Y <= 0 || p.Y >= Height-1 {
			p.Active = false
			continue
		}

		if g.hitShield(p.X, p.Y) {
			p.Active = false
			continue
		}

		if p.Owner == OwnerPlayer {
			if g.hitEnemy(p.X, p.Y) {
				p.Active = false
				ev |= EventEnemyKilled
			}
			continue
		}

		if p.X == g.playerX && p.Y == playerRow {
			p.Active = false
			g.lives--
			ev |= EventPlayerHit
			if g.lives <= 0 {
				g.lives = 0
				g.gameOver = true
				return ev
			}
		}
	}
	return ev
}

func (g *Game) hitShield(x, y int) bool {
	for s := range g.shields {
		if g.shields[s].absorb(x, y) {
			return true
		}
	}
	return false
}

// hitEnemy kills the first alive enemy at (x, y) in slot order.
func (g *Game) hitEnemy(x, y int) bool {
	for i := 0; i < g.enemyCount; i++ {
		e := &g.enemies[i]
		if e.Alive && e.X == x && e.Y == y {
			e.Alive = false
			g.score += ScorePerEnemy
			return true
		}
	}
	return false
}
