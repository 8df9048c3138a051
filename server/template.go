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
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/defsub/marquee/movie"
)

//go:embed res/static
var resStatic embed.FS

//go:embed res/template
var resTemplates embed.FS

func mountResFS(resFS embed.FS) http.FileSystem {
	fsys, err := fs.Sub(resFS, "res")
	if err != nil {
		panic(err)
	}
	return http.FS(fsys)
}

func getTemplates() *template.Template {
	return template.Must(template.New("").Funcs(doFuncMap()).
		ParseFS(resTemplates, "res/template/*.html"))
}

func doFuncMap() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"stars": func(m movie.Movie) template.HTML {
			var b strings.Builder
			for _, filled := range movie.Stars(m.Rating) {
				if filled {
					b.WriteString(`<i class="star full">&#9733;</i>`)
				} else {
					b.WriteString(`<i class="star empty">&#9734;</i>`)
				}
			}
			return template.HTML(b.String())
		},
	}
}

func render(ctx Context, temp string, view interface{}, w http.ResponseWriter) {
	err := ctx.Template().ExecuteTemplate(w, temp, view)
	if err != nil {
		serverErr(w, err)
	}
}
