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

package wavwriter

import (
	"context"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/timer"
)

// SampleRate of the recorded audio.
const SampleRate = 8000

const bitDepth = 16

// amplitude of the tone. comfortably below the maximum for a 16 bit sample
const amplitude = 8192

// the lowest tone. tones for other cells are a whole step above the previous
// cell
const baseFrequency = 220.0

// WavWriter implements the grid.Listener and timer.Delayer interfaces.
type WavWriter struct {
	filename string
	delayer  timer.Delayer

	// frequency of the current tone. zero is silence
	frequency float64
	phase     float64

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. Delays
// are passed on to the delayer after the samples have been recorded. If
// delayer is nil, delays return immediately.
func New(filename string, delayer timer.Delayer) *WavWriter {
	return &WavWriter{
		filename: filename,
		delayer:  delayer,
		buffer:   make([]int, 0),
	}
}

// Frequency returns the tone used for the cell index in the mode. Returns zero
// for the rest index and for invalid indices.
func Frequency(m mode.Mode, index int) float64 {
	if !m.Valid(index) || index == m.Rest() {
		return 0
	}
	lyt := m.Layout()
	n := index - lyt.First
	return baseFrequency * math.Pow(2, float64(n*2)/12)
}

// Highlight implements the grid.Listener interface.
func (aw *WavWriter) Highlight(m mode.Mode, active int) {
	aw.frequency = Frequency(m, active)
	aw.phase = 0
}

// Delay implements the timer.Delayer interface.
func (aw *WavWriter) Delay(ctx context.Context, d time.Duration) error {
	n := int(d.Seconds() * SampleRate)
	step := 2 * math.Pi * aw.frequency / SampleRate
	for i := 0; i < n; i++ {
		if aw.frequency == 0 {
			aw.buffer = append(aw.buffer, 0)
			continue
		}
		aw.buffer = append(aw.buffer, int(amplitude*math.Sin(aw.phase)))
		aw.phase += step
	}

	if aw.delayer == nil {
		return nil
	}
	return aw.delayer.Delay(ctx, d)
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close writes the recorded audio to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
