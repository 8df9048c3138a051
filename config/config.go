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

package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/defsub/marquee"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DatabaseConfig struct {
	Driver  string
	Source  string
	LogMode bool
}

func (c DatabaseConfig) GormConfig() *gorm.Config {
	var glog logger.Interface
	if c.LogMode {
		glog = logger.Default
	} else {
		glog = logger.Discard
	}
	return &gorm.Config{Logger: glog}
}

type ClientConfig struct {
	CacheDir  string
	MaxAge    time.Duration
	UseCache  bool
	UserAgent string
	Timeout   time.Duration
	Retries   int
}

type TMDBAPIConfig struct {
	Endpoint string
	Key      string
	Language string
	ImageURL string
}

type MoviesConfig struct {
	DB DatabaseConfig
}

type ServerConfig struct {
	Listen        string
	URL           string
	Secret        string
	TokenAge      time.Duration
	RequireReview bool
}

type Config struct {
	Client  ClientConfig
	DataDir string
	Movies  MoviesConfig
	Server  ServerConfig
	TMDB    TMDBAPIConfig
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("Client.CacheDir", ".httpcache")
	v.SetDefault("Client.MaxAge", "720h") // 30 days in hours
	v.SetDefault("Client.UseCache", "false")
	v.SetDefault("Client.UserAgent", userAgent())
	v.SetDefault("Client.Timeout", "30s")
	v.SetDefault("Client.Retries", "0")

	v.SetDefault("DataDir", ".")

	v.SetDefault("Movies.DB.Driver", "sqlite3")
	v.SetDefault("Movies.DB.Source", "movies.db")
	v.SetDefault("Movies.DB.LogMode", "false")

	v.SetDefault("Server.Listen", "127.0.0.1:3000")
	v.SetDefault("Server.URL", "https://example.com") // w/o trailing slash
	// fallback is for development only, override in production
	v.SetDefault("Server.Secret", "fallback-secret")
	v.SetDefault("Server.TokenAge", "4h")
	v.SetDefault("Server.RequireReview", "false")

	v.SetDefault("TMDB.Endpoint", "https://api.themoviedb.org")
	v.SetDefault("TMDB.Key", "903a776b0638da68e9ade38ff538e1d3")
	v.SetDefault("TMDB.Language", "en-US")
	v.SetDefault("TMDB.ImageURL", "https://image.tmdb.org/t/p/w500")
}

func userAgent() string {
	return marquee.AppName + "/" + marquee.Version + " ( " + marquee.Contact + " ) "
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	var pathRegexp = regexp.MustCompile(`(dir|source)$`)
	err := v.ReadInConfig()
	if err != nil {
		// defaults alone are enough to run
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			err = nil
		}
	}
	dir := filepath.Dir(v.ConfigFileUsed())
	for _, k := range v.AllKeys() {
		if pathRegexp.MatchString(k) {
			val := v.Get(k)
			if strings.HasPrefix(val.(string), "/") == false &&
				strings.HasPrefix(val.(string), "file:") == false {
				val = fmt.Sprintf("%s/%s", dir, val.(string))
				v.Set(k, val)
			}
		}
	}
	if err == nil {
		err = v.Unmarshal(&config)
	}
	return &config, err
}

// TestConfig returns defaults with an in-memory movie database, suitable for
// tests that should not touch the filesystem or network.
func TestConfig() (*Config, error) {
	var config Config
	v := viper.New()
	configDefaults(v)
	v.Set("Movies.DB.Source", "file::memory:?cache=shared")
	v.Set("Client.UseCache", "false")
	err := v.Unmarshal(&config)
	return &config, err
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	}
	configDefaults(v)
	return readConfig(v)
}

func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	configDefaults(v)
	return readConfig(v)
}
