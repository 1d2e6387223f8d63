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

package console

import (
	"testing"

	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/test"
)

func TestFilter(t *testing.T) {
	p := []byte{'1', line.KeyInterrupt, '2', line.KeyInterrupt}
	n, interrupted := filter(p)
	test.ExpectSuccess(t, interrupted)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, string(p[:n]), "12")

	p = []byte("R\r")
	n, interrupted = filter(p)
	test.ExpectFailure(t, interrupted)
	test.ExpectEquality(t, n, 2)

	p = []byte{line.KeyInterrupt}
	n, interrupted = filter(p)
	test.ExpectSuccess(t, interrupted)
	test.ExpectEquality(t, n, 0)
}
