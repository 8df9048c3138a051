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
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	ErrBadDriver     = errors.New("driver not supported")
	ErrMovieNotFound = errors.New("movie not found")
)

func (m *Movies) openDB() (err error) {
	cfg := m.config.Movies.DB.GormConfig()

	if m.config.Movies.DB.Driver == "sqlite3" {
		m.db, err = gorm.Open(sqlite.Open(m.config.Movies.DB.Source), cfg)
	} else {
		err = ErrBadDriver
	}

	if err != nil {
		return
	}

	err = m.db.AutoMigrate(&Movie{})
	return
}

func (m *Movies) closeDB() {
	conn, err := m.db.DB()
	if err != nil {
		return
	}
	conn.Close()
}

// Movies returns all records in insertion order. Ranking is assigned later
// by RankMovies; ties in rating keep this order.
func (m *Movies) Movies() []Movie {
	var movies []Movie
	m.db.Order("id").Find(&movies)
	return movies
}

func (m *Movies) LookupMovie(id int) (Movie, error) {
	var movie Movie
	err := m.db.First(&movie, id).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return Movie{}, ErrMovieNotFound
	}
	return movie, err
}

func (m *Movies) FindMovieTitle(title string) (Movie, error) {
	var movie Movie
	err := m.db.First(&movie, "title = ?", title).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return Movie{}, ErrMovieNotFound
	}
	return movie, err
}

func (m *Movies) MovieCount() int64 {
	var count int64
	m.db.Model(&Movie{}).Count(&count)
	return count
}

func (m *Movies) CreateMovie(movie *Movie) error {
	return m.db.Create(movie).Error
}

// UpdateRating sets rating and review on an existing record. No other field
// is ever mutated after creation.
func (m *Movies) UpdateRating(movie *Movie, rating float64, review string) error {
	movie.Rating = &rating
	movie.Review = &review
	return m.db.Model(movie).Updates(map[string]interface{}{
		"rating": rating,
		"review": review,
	}).Error
}

// DeleteMovie permanently removes a record. There is no soft-delete and no
// undo.
func (m *Movies) DeleteMovie(movie Movie) error {
	return m.db.Unscoped().Delete(&movie).Error
}
