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

package sequence

import (
	"strings"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/mode"
)

// Sentinal errors.
const (
	NegativeCapacity = "sequence: capacity cannot be negative (%d)"
	OutOfRange       = "sequence: slot %d out of range (capacity %d)"
	InvalidValue     = "sequence: value %d is not valid for %s"
)

// Source of random numbers used by Generate(). The random package satisfies
// this interface, as does rand.Rand from the standard library.
type Source interface {
	// Intn returns a number in the range [0, n)
	Intn(n int) int
}

// Sequence is an ordered list of colour indices with a capacity that is fixed
// when the sequence is created.
type Sequence struct {
	mode  mode.Mode
	slots []int
}

// NewSequence is the preferred method of initialisation for the Sequence type.
// All slots are set to the rest marker of the mode.
func NewSequence(m mode.Mode, capacity int) (*Sequence, error) {
	if capacity < 0 {
		return nil, curated.Errorf(NegativeCapacity, capacity)
	}

	seq := &Sequence{
		mode:  m,
		slots: make([]int, capacity),
	}
	seq.Reset()

	return seq, nil
}

// Generate a new sequence. Slots with even position are drawn uniformly from
// the palette of the mode. Odd slots are set to the rest marker.
func Generate(m mode.Mode, capacity int, src Source) (*Sequence, error) {
	seq, err := NewSequence(m, capacity)
	if err != nil {
		return nil, err
	}

	for i := 0; i < capacity; i += 2 {
		seq.slots[i] = m.Colour(src.Intn(m.PaletteSize()))
	}

	return seq, nil
}

// Reset all slots to the rest marker.
func (seq *Sequence) Reset() {
	rest := seq.mode.Rest()
	for i := range seq.slots {
		seq.slots[i] = rest
	}
}

// Mode returns the mode the sequence was created for.
func (seq *Sequence) Mode() mode.Mode {
	return seq.mode
}

// Cap returns the capacity of the sequence.
func (seq *Sequence) Cap() int {
	return len(seq.slots)
}

// At returns the value at position i. Positions outside the sequence return
// the rest marker.
func (seq *Sequence) At(i int) int {
	if i < 0 || i >= len(seq.slots) {
		return seq.mode.Rest()
	}
	return seq.slots[i]
}

// Set the value at position i. The value must be a palette colour or the rest
// marker.
func (seq *Sequence) Set(i int, v int) error {
	if i < 0 || i >= len(seq.slots) {
		return curated.Errorf(OutOfRange, i, len(seq.slots))
	}
	if v != seq.mode.Rest() && !seq.mode.Valid(v) {
		return curated.Errorf(InvalidValue, v, seq.mode)
	}
	seq.slots[i] = v
	return nil
}

// Prefix returns a copy of the first n values. n is clamped to the capacity.
func (seq *Sequence) Prefix(n int) []int {
	n = min(max(n, 0), len(seq.slots))
	p := make([]int, n)
	copy(p, seq.slots)
	return p
}

func (seq *Sequence) String() string {
	s := strings.Builder{}
	for i, v := range seq.slots {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(seq.mode.Describe(v))
	}
	return s.String()
}
