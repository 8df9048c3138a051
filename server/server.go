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
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/defsub/marquee/config"
	"github.com/defsub/marquee/lib/log"
	"github.com/defsub/marquee/movie"
)

func requestHandler(ctx RequestContext, handler http.HandlerFunc) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, withContext(r, ctx))
	}
	return http.HandlerFunc(fn)
}

// makeMux wires the route table. The root listing is registered last so
// the prefix pattern cannot shadow the other routes.
func makeMux(ctx RequestContext) *pat.PatternServeMux {
	resFileServer := http.FileServer(mountResFS(resStatic))
	staticHandler := func(w http.ResponseWriter, r *http.Request) {
		resFileServer.ServeHTTP(w, r)
	}

	mux := pat.New()
	mux.Get("/static/", http.HandlerFunc(staticHandler))
	mux.Get("/add", requestHandler(ctx, addHandler))
	mux.Get("/find", requestHandler(ctx, findHandler))
	mux.Get("/add/:id", requestHandler(ctx, addMovieHandler))
	mux.Get("/edit/:id", requestHandler(ctx, editHandler))
	mux.Post("/edit/:id", requestHandler(ctx, editSubmitHandler))
	mux.Get("/delete/:id", requestHandler(ctx, deleteHandler))
	mux.Get("/", requestHandler(ctx, homeHandler))
	return mux
}

// Serve opens the store and runs the web interface until the listener
// fails.
func Serve(config *config.Config) error {
	movies := movie.NewMovies(config)
	err := movies.Open()
	log.CheckError(err)
	defer movies.Close()

	ctx := makeContext(config, movies)
	http.Handle("/", makeMux(ctx))

	log.Printf("listening on %s\n", config.Server.Listen)
	return http.ListenAndServe(config.Server.Listen, nil)
}
