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

	"github.com/defsub/marquee/movie"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "marquee stats",
	Long:  `Show collection counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stats()
	},
}

func stats() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	m := movie.NewMovies(cfg)
	err = m.Open()
	if err != nil {
		return err
	}
	defer m.Close()
	fmt.Printf("movies %d\n", m.MovieCount())
	rated := 0
	for _, v := range m.Movies() {
		if v.HasRating() {
			rated++
		}
	}
	fmt.Printf("rated %d\n", rated)
	fmt.Printf("genres %d\n", len(movie.GenreNames(m.Movies())))
	return nil
}

func init() {
	statsCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(statsCmd)
}
