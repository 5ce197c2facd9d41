package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// MovePlayer shifts the player by dx columns, clamped to the playfield.
func (g *Game) MovePlayer(dx int) {
	if g.paused || g.gameOver {
		return
	}
	g.playerX = core.Clamp(g.playerX+dx, 1, Width-2)
}

// Shoot fires a player projectile unless one is already in flight.
// It reports whether a projectile was spawned.
func (g *Game) Shoot() bool {
	if g.paused || g.gameOver {
		return false
	}
	for i := range g.projectiles {
		p := &g.projectiles[i]
		if p.Active && p.Owner == OwnerPlayer {
			return false
		}
	}
	return g.spawnProjectile(g.playerX, playerRow, -1, OwnerPlayer)
}

// TogglePause flips the paused flag. It has no effect after game over.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// Handle applies a command to the game. Quit and None belong to the outer
// loop and are ignored here.
func (g *Game) Handle(cmd core.Command) {
	switch cmd {
	case core.CommandMoveLeft:
		g.MovePlayer(-1)
	case core.CommandMoveRight:
		g.MovePlayer(1)
	case core.CommandShoot:
		g.Shoot()
	case core.CommandPause:
		g.TogglePause()
	}
}
