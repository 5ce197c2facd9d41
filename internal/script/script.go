// Package script drives a game headlessly from a compact command script.
//
// A script is a comma-separated list of entries "tick:command[*count]",
// for example "0:shoot,5:left*3,40:pause". Ticks count loop iterations from
// zero, including iterations spent paused, so a script can unpause a game it
// paused.
package script

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// maxCount bounds the repeat factor of a single entry.
const maxCount = 1000

// Step is one parsed script entry.
type Step struct {
	Tick  uint64
	Cmd   core.Command
	Count int
}

// String formats the step back into script syntax.
func (s Step) String() string {
	if s.Count == 1 {
		return fmt.Sprintf("%d:%s", s.Tick, s.Cmd)
	}
	return fmt.Sprintf("%d:%s*%d", s.Tick, s.Cmd, s.Count)
}

// Script is an ordered list of steps.
type Script struct {
	steps []Step
}

// Parse reads a script. An empty string is an empty script.
func Parse(src string) (Script, error) {
	var steps []Step
	for i, raw := range strings.Split(src, ",") {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		step, err := parseStep(entry)
		if err != nil {
			return Script{}, fmt.Errorf("script: entry %d %q: %w", i+1, entry, err)
		}
		steps = append(steps, step)
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Tick < steps[j].Tick
	})
	return Script{steps: steps}, nil
}

func parseStep(entry string) (Step, error) {
	tickStr, rest, ok := strings.Cut(entry, ":")
	if !ok {
		return Step{}, errors.New("missing ':'")
	}
	tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
	if err != nil {
		return Step{}, fmt.Errorf("invalid tick: %w", err)
	}

	name, countStr, hasCount := strings.Cut(rest, "*")
	cmd, err := core.ParseCommand(name)
	if err != nil {
		return Step{}, err
	}
	if cmd == core.CommandNone {
		return Step{}, fmt.Errorf("command %q does nothing", strings.TrimSpace(name))
	}

	count := 1
	if hasCount {
		count, err = strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return Step{}, fmt.Errorf("invalid count: %w", err)
		}
		if count < 1 || count > maxCount {
			return Step{}, fmt.Errorf("count %d out of range [1, %d]", count, maxCount)
		}
	}

	return Step{Tick: tick, Cmd: cmd, Count: count}, nil
}

// Steps returns a copy of the parsed steps in tick order.
func (s Script) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Len returns the number of steps.
func (s Script) Len() int {
	return len(s.steps)
}

// String formats the script in canonical form.
func (s Script) String() string {
	parts := make([]string, len(s.steps))
	for i, st := range s.steps {
		parts[i] = st.String()
	}
	return strings.Join(parts, ",")
}

// Stats counts what happened during Play.
type Stats struct {
	Ticks         uint64 // loop iterations run
	Commands      int
	Kills         int
	PlayerHits    int
	EnemyShots    int
	LevelsCleared int
	Invaded       bool
	GameOver      bool
	Quit          bool
}

// Play runs up to ticks iterations. Each iteration applies the commands due
// at that tick, then calls Update(dt). It stops early on game over or a quit
// command, and returns the final snapshot.
func Play(g *invaders.Game, s Script, ticks uint64, dt float64) (invaders.Snapshot, Stats) {
	var st Stats
	next := 0

	for t := uint64(0); t < ticks; t++ {
		for next < len(s.steps) && s.steps[next].Tick == t {
			step := s.steps[next]
			next++
			if step.Cmd == core.CommandQuit {
				st.Quit = true
				return g.Snapshot(), st
			}
			for range step.Count {
				g.Handle(step.Cmd)
				st.Commands++
			}
		}

		ev := g.Update(dt)
		st.Ticks++
		st.add(ev)

		if g.GameOver() {
			st.GameOver = true
			break
		}
	}
	return g.Snapshot(), st
}

func (st *Stats) add(ev invaders.Events) {
	if ev.Has(invaders.EventEnemyKilled) {
		st.Kills++
	}
	if ev.Has(invaders.EventPlayerHit) {
		st.PlayerHits++
	}
	if ev.Has(invaders.EventEnemyFired) {
		st.EnemyShots++
	}
	if ev.Has(invaders.EventLevelCleared) {
		st.LevelsCleared++
	}
	if ev.Has(invaders.EventInvaded) {
		st.Invaded = true
	}
}
