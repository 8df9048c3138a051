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
	"sort"
	"strings"

	"github.com/defsub/marquee/lib/str"
)

// GenreAll is the filter value that disables genre filtering.
const GenreAll = "All"

// FilterMovies returns the movies matching both filters. The genre filter is
// a case-insensitive substring match against the stored genre string; "All"
// or empty disables it. The search filter is a case-insensitive substring
// match against the title.
func FilterMovies(movies []Movie, genre, search string) []Movie {
	result := make([]Movie, 0, len(movies))
	genre = strings.ToLower(genre)
	search = strings.ToLower(search)
	for _, m := range movies {
		if genre != "" && genre != strings.ToLower(GenreAll) &&
			!strings.Contains(strings.ToLower(m.Genres), genre) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		result = append(result, m)
	}
	return result
}

// RankMovies orders movies by rating descending and assigns a dense 1..N
// ranking. Unrated movies order after rated ones; ties keep input order. The
// ranking is computed at read time only and never written back.
func RankMovies(movies []Movie) []Movie {
	ranked := make([]Movie, len(movies))
	copy(ranked, movies)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Rating, ranked[j].Rating
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri > *rj
	})
	for i := range ranked {
		ranked[i].Ranking = i + 1
	}
	return ranked
}

// GenreNames returns the deduplicated, sorted genre tokens across all given
// movies. Callers pass the unfiltered record set so the filter dropdown
// always shows every known genre.
func GenreNames(movies []Movie) []string {
	set := make(map[string]bool)
	for _, m := range movies {
		for _, name := range str.Split(m.Genres) {
			if name != "" {
				set[name] = true
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
