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

// Package assert contains checks that are only useful during development,
// such as checking that a function is being called from the goroutine that
// it must be called from.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread remembers the goroutine it was created on.
type Thread struct {
	id uint64
}

// NewThread returns a Thread for the calling goroutine.
func NewThread() Thread {
	return Thread{id: GoRoutineID()}
}

// Check panics if the calling goroutine is not the goroutine the Thread was
// created on. The label is used in the panic message.
func (t Thread) Check(label string) {
	if id := GoRoutineID(); id != t.id {
		panic(fmt.Sprintf("%s: called from goroutine %d but must be called from goroutine %d", label, id, t.id))
	}
}
