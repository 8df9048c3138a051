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
	"fmt"
	"net/url"

	"github.com/defsub/marquee/config"
	"github.com/defsub/marquee/lib/client"
)

type TMDB struct {
	config *config.Config
	client *client.Client
}

func NewTMDB(config *config.Config) *TMDB {
	return &TMDB{
		config: config,
		client: client.NewClient(&config.Client),
	}
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Movie struct {
	ID               int     `json:"id"` // unique movie ID
	IMDB_ID          string  `json:"imdb_id"`
	Adult            bool    `json:"adult"`
	BackdropPath     string  `json:"backdrop_path"`
	Genres           []Genre `json:"genres"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Tagline          string  `json:"tagline"`
	Title            string  `json:"title"`
	VoteAverage      float32 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Runtime          int     `json:"runtime"`
}

type MovieResult struct {
	ID               int     `json:"id"`
	Adult            bool    `json:"adult"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	VoteAverage      float32 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

type moviePage struct {
	Page         int           `json:"page"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
	Results      []MovieResult `json:"results"`
}

type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type videoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

const (
	SiteYouTube = "YouTube"
	TypeTrailer = "Trailer"

	youtubeWatch = "https://www.youtube.com/watch?v=%s"
)

func (m *TMDB) moviePage(q string, page int) (*moviePage, error) {
	url := fmt.Sprintf(
		"%s/3/search/movie?api_key=%s&language=%s&query=%s&page=%d",
		m.config.TMDB.Endpoint, m.config.TMDB.Key, m.config.TMDB.Language,
		url.QueryEscape(q), page)
	var result moviePage
	err := m.client.GetJson(url, &result)
	return &result, err
}

func (m *TMDB) MovieSearch(q string) ([]MovieResult, error) {
	// TODO only supports one page right now
	page, err := m.moviePage(q, 1)
	return page.Results, err
}

func (m *TMDB) MovieDetail(tmid int) (*Movie, error) {
	url := fmt.Sprintf(
		"%s/3/movie/%d?api_key=%s",
		m.config.TMDB.Endpoint, tmid, m.config.TMDB.Key)
	var result Movie
	err := m.client.GetJson(url, &result)
	return &result, err
}

func (m *TMDB) MovieVideos(tmid int) ([]Video, error) {
	url := fmt.Sprintf(
		"%s/3/movie/%d/videos?api_key=%s",
		m.config.TMDB.Endpoint, tmid, m.config.TMDB.Key)
	var result videoList
	err := m.client.GetJson(url, &result)
	return result.Results, err
}

// MovieTrailer returns a YouTube watch URL for the first trailer of the
// movie, or an empty string when the movie has none.
func (m *TMDB) MovieTrailer(tmid int) (string, error) {
	videos, err := m.MovieVideos(tmid)
	if err != nil {
		return "", err
	}
	for _, v := range videos {
		if v.Site == SiteYouTube && v.Type == TypeTrailer {
			return fmt.Sprintf(youtubeWatch, v.Key), nil
		}
	}
	return "", nil
}

// Poster prepends the configured image host to a TMDB poster path. An empty
// path yields an empty URL.
func (m *TMDB) Poster(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return fmt.Sprintf("%s%s", m.config.TMDB.ImageURL, posterPath)
}
