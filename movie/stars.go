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
	"math"
)

// StarCount is the length of a star sequence for a rated movie.
const StarCount = 5

// Stars maps a 0-10 rating to a fixed sequence of 5 filled/empty symbols.
// The filled count is the rating halved and rounded with ties away from
// zero, so 7 rounds to 4 filled. A missing rating yields an empty sequence,
// distinct from a zero rating which yields 5 empty symbols.
func Stars(rating *float64) []bool {
	if rating == nil {
		return nil
	}
	filled := int(math.Round(*rating / 2))
	stars := make([]bool, StarCount)
	for i := 0; i < filled && i < StarCount; i++ {
		stars[i] = true
	}
	return stars
}
