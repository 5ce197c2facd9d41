package script

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

const testDT = 1.0 / 60.0

func mustParse(t *testing.T, src string) Script {
	t.Helper()
	s, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return s
}

func TestParse(t *testing.T) {
	s := mustParse(t, " 5:left*3, 0:shoot ,40:PAUSE,5:move_right")

	want := []Step{
		{Tick: 0, Cmd: core.CommandShoot, Count: 1},
		{Tick: 5, Cmd: core.CommandMoveLeft, Count: 3},
		{Tick: 5, Cmd: core.CommandMoveRight, Count: 1},
		{Tick: 40, Cmd: core.CommandPause, Count: 1},
	}
	got := s.Steps()
	if len(got) != len(want) {
		t.Fatalf("Steps() has %d entries, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Steps()[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}

	if str := s.String(); str != "0:shoot,5:left*3,5:right,40:pause" {
		t.Errorf("String() = %q", str)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", " ", ",,"} {
		s := mustParse(t, src)
		if s.Len() != 0 {
			t.Errorf("Parse(%q).Len() = %d, expected 0", src, s.Len())
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing colon", "5shoot"},
		{"negative tick", "-1:shoot"},
		{"bad tick", "x:shoot"},
		{"unknown command", "0:jump"},
		{"none command", "0:none"},
		{"bad count", "0:left*x"},
		{"zero count", "0:left*0"},
		{"huge count", "0:left*5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) = nil, expected error", tt.src)
			}
			if !strings.HasPrefix(err.Error(), "script: ") {
				t.Errorf("error %q missing package prefix", err)
			}
		})
	}
}

func TestPlayMoves(t *testing.T) {
	g := invaders.New()
	_, st := Play(g, mustParse(t, "0:left*5,2:right*2"), 4, testDT)

	if g.PlayerX() != 37 {
		t.Errorf("PlayerX() = %d, expected 37", g.PlayerX())
	}
	if st.Commands != 7 {
		t.Errorf("Commands = %d, expected 7", st.Commands)
	}
	if st.Ticks != 4 {
		t.Errorf("Ticks = %d, expected 4", st.Ticks)
	}
}

func TestPlayPauseResume(t *testing.T) {
	g := invaders.New()
	snap, st := Play(g, mustParse(t, "0:pause,5:pause"), 10, testDT)

	if st.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", st.Ticks)
	}
	if snap.Tick != 5 {
		t.Errorf("snapshot Tick = %d, expected 5 simulated ticks", snap.Tick)
	}
	if snap.Paused {
		t.Error("game still paused")
	}
}

func TestPlayQuit(t *testing.T) {
	g := invaders.New()
	_, st := Play(g, mustParse(t, "3:quit,4:left"), 100, testDT)

	if !st.Quit {
		t.Error("Quit = false, expected true")
	}
	if st.Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", st.Ticks)
	}
}

func TestPlayShootKills(t *testing.T) {
	g := invaders.New()
	snap, st := Play(g, mustParse(t, "0:shoot"), 20, testDT)

	if st.Kills != 1 || snap.Score != invaders.ScorePerEnemy {
		t.Errorf("kills/score = %d/%d, expected 1/%d", st.Kills, snap.Score, invaders.ScorePerEnemy)
	}
	if snap.AliveEnemies != 49 {
		t.Errorf("AliveEnemies = %d, expected 49", snap.AliveEnemies)
	}
}

func TestPlayIdleUntilInvaded(t *testing.T) {
	g := invaders.New()
	snap, st := Play(g, Script{}, 20000, testDT)

	if !st.GameOver || !st.Invaded {
		t.Errorf("GameOver/Invaded = %v/%v, expected true/true", st.GameOver, st.Invaded)
	}
	if st.Ticks != 9966 {
		t.Errorf("Ticks = %d, expected 9966", st.Ticks)
	}
	if st.EnemyShots != 16 {
		t.Errorf("EnemyShots = %d, expected 16", st.EnemyShots)
	}
	if st.PlayerHits != 0 || snap.Lives != 3 {
		t.Errorf("PlayerHits/Lives = %d/%d, expected 0/3", st.PlayerHits, snap.Lives)
	}
}

func TestPlayDeterministic(t *testing.T) {
	s := mustParse(t, "0:shoot,10:left*4,30:shoot,60:right*9,90:shoot,200:shoot")

	a, _ := Play(invaders.New(invaders.WithSeed(7)), s, 2000, testDT)
	b, _ := Play(invaders.New(invaders.WithSeed(7)), s, 2000, testDT)
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %x vs %x", a.Hash(), b.Hash())
	}

	c, _ := Play(invaders.New(invaders.WithSeed(8)), s, 2000, testDT)
	if a.RNGState == c.RNGState {
		t.Error("different seeds produced the same RNG state")
	}
}
