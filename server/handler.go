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
	"strings"

	"github.com/defsub/marquee/lib/log"
	"github.com/defsub/marquee/lib/str"
	"github.com/defsub/marquee/movie"
)

// homeHandler renders the ranked listing, applying the genre and search
// query parameters.
func homeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	genre := r.URL.Query().Get("genre")
	search := r.URL.Query().Get("search")
	render(ctx, "index.html", indexView(ctx, genre, search), w)
}

func addHandler(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	render(ctx, "add.html", nil, w)
}

// findHandler searches the metadata service for the submitted title. A
// blank title goes straight back to the add page without a lookup; a
// service failure is logged and also lands back on the add page.
func findHandler(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		http.Redirect(w, r, "/add", http.StatusTemporaryRedirect)
		return
	}
	candidates, err := ctx.Movies().SearchMovies(title)
	if err != nil {
		log.Printf("movie search: %s\n", err)
		http.Redirect(w, r, "/add", http.StatusTemporaryRedirect)
		return
	}
	render(ctx, "select.html", selectView(title, candidates), w)
}

// addMovieHandler fetches detail for the selected candidate and creates a
// record, then sends the user on to rate it.
func addMovieHandler(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	tmid := str.Atoi(r.URL.Query().Get(":id"))
	m, err := ctx.Movies().AddMovie(tmid)
	if err != nil {
		log.Printf("add movie %d: %s\n", tmid, err)
		http.Redirect(w, r, "/add", http.StatusTemporaryRedirect)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/edit/%d", m.ID), http.StatusSeeOther)
}

func editHandler(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	id := r.URL.Query().Get(":id")
	m, err := ctx.Movies().LookupMovie(str.Atoi(id))
	if err != nil {
		if errors.Is(err, movie.ErrMovieNotFound) {
			notFoundErr(w)
		} else {
			serverErr(w, err)
		}
		return
	}
	form := newEditForm(m)
	form.Token, err = ctx.Tokens().NewFormToken(id)
	if err != nil {
		serverErr(w, err)
		return
	}
	render(ctx, "edit.html", editView(m, form), w)
}

// editSubmitHandler applies a rating and review. Invalid input re-renders
// the form with messages; success redirects home so a reload cannot
// resubmit.
func editSubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	id := r.URL.Query().Get(":id")
	m, err := ctx.Movies().LookupMovie(str.Atoi(id))
	if err != nil {
		if errors.Is(err, movie.ErrMovieNotFound) {
			notFoundErr(w)
		} else {
			serverErr(w, err)
		}
		return
	}

	form := editFormValues(r)
	if err := ctx.Tokens().CheckFormToken(form.Token, id); err != nil {
		form.Errors["Token"] = "form expired, try again"
		form.Token, err = ctx.Tokens().NewFormToken(id)
		if err != nil {
			serverErr(w, err)
			return
		}
		render(ctx, "edit.html", editView(m, form), w)
		return
	}
	if !form.Validate(ctx.Config().Server.RequireReview) {
		form.Token, err = ctx.Tokens().NewFormToken(id)
		if err != nil {
			serverErr(w, err)
			return
		}
		render(ctx, "edit.html", editView(m, form), w)
		return
	}

	err = ctx.Movies().UpdateRating(&m, form.RatingValue(), form.Review)
	if err != nil {
		serverErr(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func deleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	m, err := ctx.Movies().LookupMovie(str.Atoi(r.URL.Query().Get(":id")))
	if err != nil {
		if errors.Is(err, movie.ErrMovieNotFound) {
			notFoundErr(w)
		} else {
			serverErr(w, err)
		}
		return
	}
	err = ctx.Movies().DeleteMovie(m)
	if err != nil {
		serverErr(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
