// This file is part of Simonvid.
//
// Simonvid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Simonvid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Simonvid.  If not, see <https://www.gnu.org/licenses/>.

package simon

import (
	"fmt"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/sequence"
)

// Outcome of a round.
type Outcome int

// List of valid Outcome values.
const (
	Continue Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// State of the engine within a round.
type State int

// List of valid State values.
const (
	Playback State = iota
	Collecting
	Verifying
	Finished
)

func (s State) String() string {
	switch s {
	case Playback:
		return "playback"
	case Collecting:
		return "collecting"
	case Verifying:
		return "verifying"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Sentinal errors.
const (
	NotCollecting = "engine: guess recorded while %s"
	BadSlot       = "engine: guess slot %d is not a colour slot of round %d"
)

// Engine holds the rules of the game. It knows nothing about the line or the
// display.
type Engine struct {
	Mode   mode.Mode
	Target *sequence.Sequence
	Guess  *sequence.Sequence

	Round  int
	Length int

	State   State
	Outcome Outcome

	// the number of guess positions compared by the most recent Verify()
	Inspected int
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The guess sequence is created with the same mode and capacity as the
// target.
func NewEngine(target *sequence.Sequence) (*Engine, error) {
	guess, err := sequence.NewSequence(target.Mode(), target.Cap())
	if err != nil {
		return nil, curated.Errorf("engine: %v", err)
	}

	e := &Engine{
		Mode:   target.Mode(),
		Target: target,
		Guess:  guess,
		Round:  1,
	}
	e.Length = e.length()

	return e, nil
}

func (e *Engine) String() string {
	return fmt.Sprintf("round %d (length %d): %s", e.Round, e.Length, e.State)
}

func (e *Engine) length() int {
	return min(e.Round*2, e.Target.Cap())
}

// Playback returns the entries of the target sequence to show for the
// current round.
func (e *Engine) Playback() []int {
	e.State = Playback
	return e.Target.Prefix(e.Length)
}

// Slots returns the positions in the guess sequence that take a colour in
// the current round. The engine moves to the collecting state.
func (e *Engine) Slots() []int {
	e.State = Collecting
	s := make([]int, 0, (e.Length+1)/2)
	for a := 0; a < e.Length; a += 2 {
		s = append(s, a)
	}
	return s
}

// Record a guess. The colour is written to slot a and the rest marker to
// slot a+1. The rest marker is not written if a+1 is beyond the capacity of
// the sequence.
func (e *Engine) Record(a int, colour int) error {
	if e.State != Collecting {
		return curated.Errorf(NotCollecting, e.State)
	}
	if a < 0 || a >= e.Length || a%2 != 0 {
		return curated.Errorf(BadSlot, a, e.Round)
	}

	if err := e.Guess.Set(a, colour); err != nil {
		return curated.Errorf("engine: %v", err)
	}
	if a+1 < e.Guess.Cap() {
		if err := e.Guess.Set(a+1, e.Mode.Rest()); err != nil {
			return curated.Errorf("engine: %v", err)
		}
	}

	return nil
}

// Verify the guess against the target. Comparison stops at the first
// mismatch. If there is no mismatch the round advances or, if the sequence
// cannot grow any further, the game is won.
func (e *Engine) Verify() Outcome {
	e.State = Verifying

	k, n := firstMismatch(e.Target.At, e.Guess.At, e.Length)
	e.Inspected = n

	if k >= 0 {
		logger.Logf(logger.Allow, "engine", "mismatch at %d in round %d", k, e.Round)
		e.Outcome = Lost
		e.State = Finished
		return e.Outcome
	}

	if e.Round*2+2 > e.Target.Cap() {
		e.Outcome = Won
		e.State = Finished
		return e.Outcome
	}

	e.Round++
	e.Length = e.length()
	e.Outcome = Continue
	return e.Outcome
}

// firstMismatch compares the first length positions of two sequences. It
// returns the first position that differs, or -1 if there is none, and the
// number of positions that were compared.
func firstMismatch(expected func(int) int, guess func(int) int, length int) (int, int) {
	for i := 0; i < length; i++ {
		if expected(i) != guess(i) {
			return i, i + 1
		}
	}
	return -1, length
}
