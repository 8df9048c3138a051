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

package tmdb

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/defsub/marquee/config"
)

func TestMovieSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"page":1,"total_pages":1,"total_results":1,
				"results":[{"id":27205,"title":"Inception",
				"release_date":"2010-07-16"}]}`))
		}))
	defer ts.Close()

	cfg, err := config.TestConfig()
	if err != nil {
		t.Fatalf("TestConfig %s\n", err)
	}
	cfg.TMDB.Endpoint = ts.URL
	m := NewTMDB(cfg)

	results, err := m.MovieSearch("inception")
	if err != nil {
		t.Fatalf("MovieSearch %s\n", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d\n", len(results))
	}
	if results[0].ID != 27205 || results[0].Title != "Inception" {
		t.Errorf("got %d %s\n", results[0].ID, results[0].Title)
	}
}

func TestPoster(t *testing.T) {
	cfg, err := config.TestConfig()
	if err != nil {
		t.Fatalf("TestConfig %s\n", err)
	}
	m := NewTMDB(cfg)

	url := m.Poster("/8uO0gUM8aNqYLs1OsTBQiXu0fEv.jpg")
	expect := "https://image.tmdb.org/t/p/w500/8uO0gUM8aNqYLs1OsTBQiXu0fEv.jpg"
	if url != expect {
		t.Errorf("got %s\n", url)
	}
}

func TestPosterEmpty(t *testing.T) {
	cfg, _ := config.TestConfig()
	m := NewTMDB(cfg)
	if url := m.Poster(""); url != "" {
		t.Errorf("got %s\n", url)
	}
}
