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
	"context"
	"html/template"
	"net/http"

	"github.com/defsub/marquee/config"
	"github.com/defsub/marquee/lib/token"
	"github.com/defsub/marquee/movie"
)

type contextKey string

var contextKeyContext = contextKey("context")

func withContext(r *http.Request, ctx Context) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), contextKeyContext, ctx))
}

func contextValue(r *http.Request) Context {
	return r.Context().Value(contextKeyContext).(Context)
}

type Context interface {
	Config() *config.Config
	Movies() *movie.Movies
	Template() *template.Template
	Tokens() token.Tokens
}

type RequestContext struct {
	config   *config.Config
	movies   *movie.Movies
	template *template.Template
	tokens   token.Tokens
}

func (ctx RequestContext) Config() *config.Config {
	return ctx.config
}

func (ctx RequestContext) Movies() *movie.Movies {
	return ctx.movies
}

func (ctx RequestContext) Template() *template.Template {
	return ctx.template
}

func (ctx RequestContext) Tokens() token.Tokens {
	return ctx.tokens
}

func makeContext(config *config.Config, movies *movie.Movies) RequestContext {
	return RequestContext{
		config:   config,
		movies:   movies,
		template: getTemplates(),
		tokens:   token.NewTokens(config),
	}
}
