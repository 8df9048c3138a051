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
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/defsub/marquee/config"
	"github.com/defsub/marquee/movie"
)

func testContext(t *testing.T) RequestContext {
	cfg, err := config.TestConfig()
	if err != nil {
		t.Fatalf("TestConfig %s\n", err)
	}
	cfg.Movies.DB.Source = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	movies := movie.NewMovies(cfg)
	if err := movies.Open(); err != nil {
		t.Fatalf("Open %s\n", err)
	}
	t.Cleanup(movies.Close)
	return makeContext(cfg, movies)
}

func seedMovie(t *testing.T, ctx RequestContext, title string, rating float64) movie.Movie {
	m := movie.Movie{
		Title:       title,
		Year:        "1999",
		Genres:      "Drama",
		Description: "seeded",
	}
	m.Rating = &rating
	if err := ctx.Movies().CreateMovie(&m); err != nil {
		t.Fatalf("CreateMovie %s\n", err)
	}
	return m
}

func doGet(ctx RequestContext, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", path, nil)
	makeMux(ctx).ServeHTTP(w, r)
	return w
}

func doPost(ctx RequestContext, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	makeMux(ctx).ServeHTTP(w, r)
	return w
}

func TestHomeHandler(t *testing.T) {
	ctx := testContext(t)
	seedMovie(t, ctx, "Alien", 8.5)
	seedMovie(t, ctx, "The Godfather", 9.2)

	w := doGet(ctx, "/")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d\n", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Alien") || !strings.Contains(body, "The Godfather") {
		t.Error("expected both titles in listing")
	}
	if !strings.Contains(body, "star full") {
		t.Error("expected filled stars in listing")
	}
}

func TestHomeHandlerSearch(t *testing.T) {
	ctx := testContext(t)
	seedMovie(t, ctx, "Alien", 8.5)
	seedMovie(t, ctx, "The Godfather", 9.2)

	w := doGet(ctx, "/?search=alien")
	body := w.Body.String()
	if !strings.Contains(body, "Alien") {
		t.Error("expected Alien in filtered listing")
	}
	if strings.Contains(body, "The Godfather") {
		t.Error("unexpected The Godfather in filtered listing")
	}
}

func TestFindHandlerEmptyTitle(t *testing.T) {
	ctx := testContext(t)

	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"page":1,"results":[]}`))
		}))
	defer ts.Close()
	ctx.Config().TMDB.Endpoint = ts.URL

	w := doGet(ctx, "/find?title=++")
	if w.Code != http.StatusTemporaryRedirect {
		t.Errorf("expected 307, got %d\n", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/add" {
		t.Errorf("expected /add, got %s\n", loc)
	}
	if calls != 0 {
		t.Errorf("expected no metadata calls, got %d\n", calls)
	}

	// a real title does reach the service
	doGet(ctx, "/find?title=alien")
	if calls != 1 {
		t.Errorf("expected 1 metadata call, got %d\n", calls)
	}
}

func TestEditHandler(t *testing.T) {
	ctx := testContext(t)
	m := seedMovie(t, ctx, "Alien", 8.5)

	w := doGet(ctx, fmt.Sprintf("/edit/%d", m.ID))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d\n", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Alien") {
		t.Error("expected title on edit page")
	}
	if !strings.Contains(body, `name="token"`) {
		t.Error("expected form token on edit page")
	}
}

func TestEditHandlerNotFound(t *testing.T) {
	ctx := testContext(t)
	w := doGet(ctx, "/edit/99")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d\n", w.Code)
	}
}

func TestEditSubmitHandler(t *testing.T) {
	ctx := testContext(t)
	m := seedMovie(t, ctx, "Alien", 8.5)
	id := fmt.Sprintf("%d", m.ID)

	token, err := ctx.Tokens().NewFormToken(id)
	if err != nil {
		t.Fatalf("NewFormToken %s\n", err)
	}
	w := doPost(ctx, "/edit/"+id, url.Values{
		"rating": {"9.5"},
		"review": {"still holds up"},
		"token":  {token},
	})
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d\n", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("expected /, got %s\n", loc)
	}

	updated, err := ctx.Movies().LookupMovie(int(m.ID))
	if err != nil {
		t.Fatalf("LookupMovie %s\n", err)
	}
	if !updated.HasRating() || *updated.Rating != 9.5 {
		t.Error("expected rating 9.5")
	}
	if !updated.HasReview() || *updated.Review != "still holds up" {
		t.Error("expected review saved")
	}
}

func TestEditSubmitInvalidRating(t *testing.T) {
	ctx := testContext(t)
	m := seedMovie(t, ctx, "Alien", 8.5)
	id := fmt.Sprintf("%d", m.ID)

	token, err := ctx.Tokens().NewFormToken(id)
	if err != nil {
		t.Fatalf("NewFormToken %s\n", err)
	}
	w := doPost(ctx, "/edit/"+id, url.Values{
		"rating": {"11"},
		"token":  {token},
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d\n", w.Code)
	}
	if !strings.Contains(w.Body.String(), "between 0 and 10") {
		t.Error("expected rating error on page")
	}

	unchanged, _ := ctx.Movies().LookupMovie(int(m.ID))
	if *unchanged.Rating != 8.5 {
		t.Error("expected rating unchanged")
	}
}

func TestEditSubmitBadToken(t *testing.T) {
	ctx := testContext(t)
	m := seedMovie(t, ctx, "Alien", 8.5)
	id := fmt.Sprintf("%d", m.ID)

	// token issued for a different movie
	token, err := ctx.Tokens().NewFormToken("99")
	if err != nil {
		t.Fatalf("NewFormToken %s\n", err)
	}
	w := doPost(ctx, "/edit/"+id, url.Values{
		"rating": {"9"},
		"token":  {token},
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d\n", w.Code)
	}
	if !strings.Contains(w.Body.String(), "form expired") {
		t.Error("expected token error on page")
	}

	unchanged, _ := ctx.Movies().LookupMovie(int(m.ID))
	if *unchanged.Rating != 8.5 {
		t.Error("expected rating unchanged")
	}
}

func TestDeleteHandler(t *testing.T) {
	ctx := testContext(t)
	m := seedMovie(t, ctx, "Alien", 8.5)

	w := doGet(ctx, fmt.Sprintf("/delete/%d", m.ID))
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d\n", w.Code)
	}
	_, err := ctx.Movies().LookupMovie(int(m.ID))
	if !errors.Is(err, movie.ErrMovieNotFound) {
		t.Errorf("expected not found, got %v\n", err)
	}
}

func TestDeleteHandlerNotFound(t *testing.T) {
	ctx := testContext(t)
	w := doGet(ctx, "/delete/99")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d\n", w.Code)
	}
}
