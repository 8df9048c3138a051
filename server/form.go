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
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/defsub/marquee/movie"
)

const (
	RatingMin = 0.0
	RatingMax = 10.0
)

// EditForm holds the raw rating and review fields submitted from the edit
// page, along with the form token that ties the submission to a movie.
type EditForm struct {
	Rating string
	Review string
	Token  string
	Errors map[string]string

	rating float64
}

func newEditForm(m movie.Movie) *EditForm {
	form := &EditForm{Errors: map[string]string{}}
	if m.HasRating() {
		form.Rating = strconv.FormatFloat(*m.Rating, 'f', -1, 64)
	}
	if m.HasReview() {
		form.Review = *m.Review
	}
	return form
}

func editFormValues(r *http.Request) *EditForm {
	r.ParseForm()
	return &EditForm{
		Rating: r.Form.Get("rating"),
		Review: r.Form.Get("review"),
		Token:  r.Form.Get("token"),
		Errors: map[string]string{},
	}
}

// Validate checks the submitted fields, recording a message per bad field.
// Ratings are fractional, 0 through 10 inclusive.
func (f *EditForm) Validate(requireReview bool) bool {
	f.Errors = map[string]string{}
	rating := strings.TrimSpace(f.Rating)
	if rating == "" {
		f.Errors["Rating"] = "rating is required"
	} else if v, err := strconv.ParseFloat(rating, 64); err != nil {
		f.Errors["Rating"] = "rating must be a number"
	} else if math.IsNaN(v) || v < RatingMin || v > RatingMax {
		// ParseFloat accepts "NaN" and NaN compares false to everything
		f.Errors["Rating"] = "rating must be between 0 and 10"
	} else {
		f.rating = v
	}
	if requireReview && strings.TrimSpace(f.Review) == "" {
		f.Errors["Review"] = "review is required"
	}
	return len(f.Errors) == 0
}

// RatingValue is the parsed rating. Only meaningful after Validate
// returned true.
func (f *EditForm) RatingValue() float64 {
	return f.rating
}
