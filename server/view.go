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

package server

import (
	"github.com/defsub/marquee/movie"
)

// IndexView is the ranked listing shown on the home page. Movies reflects
// the active genre and search filters; Genres always comes from the full
// collection so the filter menu never shrinks.
type IndexView struct {
	Movies        []movie.Movie
	Genres        []string
	SelectedGenre string
	SearchQuery   string
}

type SelectView struct {
	Query      string
	Candidates []movie.Candidate
}

type EditView struct {
	Movie movie.Movie
	Form  *EditForm
}

func indexView(ctx Context, genre, search string) *IndexView {
	view := &IndexView{}
	all := ctx.Movies().Movies()
	view.Movies = movie.RankMovies(movie.FilterMovies(all, genre, search))
	view.Genres = movie.GenreNames(all)
	view.SelectedGenre = genre
	view.SearchQuery = search
	return view
}

func selectView(query string, candidates []movie.Candidate) *SelectView {
	return &SelectView{Query: query, Candidates: candidates}
}

func editView(m movie.Movie, form *EditForm) *EditView {
	return &EditView{Movie: m, Form: form}
}
