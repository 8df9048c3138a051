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
	"strings"

	"github.com/defsub/marquee/config"
	"github.com/defsub/marquee/lib/date"
	"github.com/defsub/marquee/lib/tmdb"
	"gorm.io/gorm"
)

type Movies struct {
	config *config.Config
	db     *gorm.DB
	tmdb   *tmdb.TMDB
}

func NewMovies(config *config.Config) *Movies {
	return &Movies{
		config: config,
		tmdb:   tmdb.NewTMDB(config),
	}
}

func (m *Movies) Open() (err error) {
	return m.openDB()
}

func (m *Movies) Close() {
	m.closeDB()
}

// SearchMovies queries the metadata service by title and returns candidates
// for selection, with the year extracted from each release date.
func (m *Movies) SearchMovies(q string) ([]Candidate, error) {
	results, err := m.tmdb.MovieSearch(q)
	if err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, Candidate{
			TMID:  r.ID,
			Title: r.Title,
			Year:  date.Year(r.ReleaseDate),
		})
	}
	return candidates, nil
}

// AddMovie fetches details for the selected candidate and creates a record
// with rating and review unset. A movie whose exact title is already stored
// is never duplicated; the existing record is returned instead.
func (m *Movies) AddMovie(tmid int) (Movie, error) {
	detail, err := m.tmdb.MovieDetail(tmid)
	if err != nil {
		return Movie{}, err
	}
	trailer, err := m.tmdb.MovieTrailer(tmid)
	if err != nil {
		return Movie{}, err
	}

	return m.resolveMovie(detail, trailer)
}

// resolveMovie reconciles fetched metadata with the store: an existing record
// with the same exact title wins, otherwise a new record is created with
// normalized fields and no rating or review.
func (m *Movies) resolveMovie(detail *tmdb.Movie, trailer string) (Movie, error) {
	existing, err := m.FindMovieTitle(detail.Title)
	if err == nil {
		return existing, nil
	}

	movie := Movie{
		Title:       detail.Title,
		Year:        date.Year(detail.ReleaseDate),
		Description: detail.Overview,
		ImgURL:      m.tmdb.Poster(detail.PosterPath),
		TrailerURL:  trailer,
		Genres:      genreNames(detail.Genres),
	}
	err = m.CreateMovie(&movie)
	return movie, err
}

func genreNames(genres []tmdb.Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}
