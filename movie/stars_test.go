// Copyright (C) 2026 The Marquee Authors.
//
// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Marquee is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.

package movie

import (
	"testing"
)

func filledCount(stars []bool) int {
	n := 0
	for _, s := range stars {
		if s {
			n++
		}
	}
	return n
}

func TestStarsMissing(t *testing.T) {
	// missing rating is an empty sequence, not five empty stars
	if stars := Stars(nil); len(stars) != 0 {
		t.Errorf("got %d stars\n", len(stars))
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating float64
		filled int
	}{
		{10, 5},
		{0, 0},
		{7, 4}, // 3.5 rounds away from zero
		{6.9, 3},
		{1, 1}, // 0.5 rounds away from zero
		{8.8, 4},
		{9.2, 5},
	}
	for _, c := range cases {
		stars := Stars(&c.rating)
		if len(stars) != StarCount {
			t.Errorf("rating %v got %d stars\n", c.rating, len(stars))
		}
		if n := filledCount(stars); n != c.filled {
			t.Errorf("rating %v got %d filled want %d\n", c.rating, n, c.filled)
		}
	}
}

func TestStarsZeroDistinctFromMissing(t *testing.T) {
	zero := 0.0
	if len(Stars(&zero)) != StarCount {
		t.Errorf("zero rating should have %d empty stars\n", StarCount)
	}
}
