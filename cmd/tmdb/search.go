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

package main

import (
	"fmt"

	"github.com/defsub/marquee/lib/date"
	"github.com/defsub/marquee/lib/tmdb"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search for movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return search()
	},
}

var optQuery string
var optDetail bool

func search() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	m := tmdb.NewTMDB(cfg)
	results, err := m.MovieSearch(optQuery)
	if err != nil {
		return err
	}
	for _, v := range results {
		fmt.Printf("%d: %s (%s)\n", v.ID, v.Title, date.Year(v.ReleaseDate))
		if optDetail {
			fmt.Printf("%s\n", m.Poster(v.PosterPath))
			trailer, err := m.MovieTrailer(v.ID)
			if err != nil {
				return err
			}
			if trailer != "" {
				fmt.Printf("%s\n", trailer)
			}
			fmt.Println()
		}
	}
	return nil
}

func init() {
	searchCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	searchCmd.Flags().StringVarP(&optQuery, "query", "q", "", "search query")
	searchCmd.Flags().BoolVarP(&optDetail, "detail", "d", false, "show poster and trailer")
	rootCmd.AddCommand(searchCmd)
}
