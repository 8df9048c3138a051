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
	"fmt"
	"testing"

	"github.com/defsub/marquee/config"
	"github.com/defsub/marquee/lib/tmdb"
)

func testMovies(t *testing.T) *Movies {
	cfg, err := config.TestConfig()
	if err != nil {
		t.Fatalf("TestConfig %s\n", err)
	}
	// a private in-memory database per test
	cfg.Movies.DB.Source = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	m := NewMovies(cfg)
	if err := m.Open(); err != nil {
		t.Fatalf("Open %s\n", err)
	}
	t.Cleanup(m.Close)
	return m
}

func TestCreateLookup(t *testing.T) {
	m := testMovies(t)

	movie := Movie{Title: "Inception", Year: "2010", Genres: "Science Fiction"}
	if err := m.CreateMovie(&movie); err != nil {
		t.Fatalf("CreateMovie %s\n", err)
	}

	got, err := m.LookupMovie(int(movie.ID))
	if err != nil {
		t.Fatalf("LookupMovie %s\n", err)
	}
	if got.Title != "Inception" {
		t.Errorf("got %s\n", got.Title)
	}
	if got.HasRating() || got.HasReview() {
		t.Errorf("new movie should have no rating or review\n")
	}
}

func TestLookupNotFound(t *testing.T) {
	m := testMovies(t)
	_, err := m.LookupMovie(999)
	if err != ErrMovieNotFound {
		t.Errorf("got %v\n", err)
	}
}

func TestUpdateRating(t *testing.T) {
	m := testMovies(t)

	movie := Movie{Title: "Alien", Year: "1979"}
	m.CreateMovie(&movie)

	if err := m.UpdateRating(&movie, 8.5, "still holds up"); err != nil {
		t.Fatalf("UpdateRating %s\n", err)
	}

	got, _ := m.LookupMovie(int(movie.ID))
	if !got.HasRating() || *got.Rating != 8.5 {
		t.Errorf("rating not persisted\n")
	}
	if !got.HasReview() || *got.Review != "still holds up" {
		t.Errorf("review not persisted\n")
	}
	if got.Year != "1979" || got.Title != "Alien" {
		t.Errorf("edit mutated other fields\n")
	}
}

func TestDeleteMovie(t *testing.T) {
	m := testMovies(t)

	movie := Movie{Title: "Paddington"}
	m.CreateMovie(&movie)

	if err := m.DeleteMovie(movie); err != nil {
		t.Fatalf("DeleteMovie %s\n", err)
	}
	if _, err := m.LookupMovie(int(movie.ID)); err != ErrMovieNotFound {
		t.Errorf("got %v\n", err)
	}
}

func TestResolveMovie(t *testing.T) {
	m := testMovies(t)

	detail := &tmdb.Movie{
		ID:          27205,
		Title:       "Inception",
		ReleaseDate: "2010-07-16",
		Overview:    "a dream within a dream",
		PosterPath:  "/poster.jpg",
		Genres: []tmdb.Genre{
			{ID: 28, Name: "Action"},
			{ID: 878, Name: "Science Fiction"},
		},
	}

	movie, err := m.resolveMovie(detail, "https://www.youtube.com/watch?v=YoHD9XEInc0")
	if err != nil {
		t.Fatalf("resolveMovie %s\n", err)
	}
	if movie.Year != "2010" {
		t.Errorf("got year %s\n", movie.Year)
	}
	if movie.ImgURL != "https://image.tmdb.org/t/p/w500/poster.jpg" {
		t.Errorf("got img %s\n", movie.ImgURL)
	}
	if movie.Genres != "Action, Science Fiction" {
		t.Errorf("got genres %s\n", movie.Genres)
	}
	if movie.TrailerURL == "" {
		t.Errorf("trailer not kept\n")
	}
}

func TestResolveMovieExistingTitle(t *testing.T) {
	m := testMovies(t)

	detail := &tmdb.Movie{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-16"}
	first, err := m.resolveMovie(detail, "")
	if err != nil {
		t.Fatalf("resolveMovie %s\n", err)
	}

	second, err := m.resolveMovie(detail, "")
	if err != nil {
		t.Fatalf("resolveMovie %s\n", err)
	}
	if first.ID != second.ID {
		t.Errorf("duplicate created: %d then %d\n", first.ID, second.ID)
	}
	if n := m.MovieCount(); n != 1 {
		t.Errorf("got %d movies\n", n)
	}
}

func TestResolveMovieNoPoster(t *testing.T) {
	m := testMovies(t)

	detail := &tmdb.Movie{ID: 1, Title: "Obscure"}
	movie, err := m.resolveMovie(detail, "")
	if err != nil {
		t.Fatalf("resolveMovie %s\n", err)
	}
	if movie.ImgURL != "" {
		t.Errorf("got img %s\n", movie.ImgURL)
	}
	if movie.Year != "N/A" {
		t.Errorf("got year %s\n", movie.Year)
	}
}
