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
	"github.com/defsub/marquee/lib/gorm"
)

// Movie is the sole persisted entity. Title is the de-duplication key; all
// fields except Rating and Review are fixed at creation time. Ranking is
// derived from rating order on each listing and never stored.
type Movie struct {
	gorm.Model
	Title       string `gorm:"index:idx_movie_title"`
	Year        string
	Description string
	ImgURL      string
	TrailerURL  string
	Genres      string
	Rating      *float64
	Review      *string
	Ranking     int `gorm:"-"`
}

func (m Movie) HasRating() bool {
	return m.Rating != nil
}

func (m Movie) HasReview() bool {
	return m.Review != nil
}

// Candidate is one result of a metadata title search, presented for user
// selection during the add workflow.
type Candidate struct {
	TMID  int
	Title string
	Year  string
}
