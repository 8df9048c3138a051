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

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/defsub/marquee/config"
	"github.com/defsub/marquee/lib/log"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

const (
	DirectiveMaxAge = "max-age"
)

var (
	HeaderUserAgent    = http.CanonicalHeaderKey("User-Agent")
	HeaderCacheControl = http.CanonicalHeaderKey("Cache-Control")
)

type Client struct {
	client    *http.Client
	useCache  bool
	userAgent string
	cache     httpcache.Cache
	maxAge    time.Duration
	retries   int
}

func NewClient(config *config.ClientConfig) *Client {
	c := Client{}
	c.userAgent = config.UserAgent
	c.useCache = config.UseCache
	c.retries = config.Retries
	if c.useCache {
		c.maxAge = config.MaxAge
		c.cache = diskcache.New(config.CacheDir)
		transport := httpcache.NewTransport(c.cache)
		c.client = transport.Client()
		log.Printf("using cache dir %s\n", config.CacheDir)
	} else {
		c.client = &http.Client{}
	}
	// external calls are bounded, never open-ended
	c.client.Timeout = config.Timeout
	return &c
}

func (c *Client) doGet(headers map[string]string, urlStr string) (*http.Response, error) {
	url, _ := url.Parse(urlStr)
	req, err := http.NewRequest(http.MethodGet, url.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set(HeaderUserAgent, c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.useCache {
		maxAge := int(c.maxAge.Seconds())
		if maxAge > 0 {
			req.Header.Set(HeaderCacheControl, fmt.Sprintf("%s=%d", DirectiveMaxAge, maxAge))
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("client.Do err %s\n", err)
		return nil, err
	}

	if resp.StatusCode != 200 {
		return resp, errors.New(fmt.Sprintf("http error %d: %s",
			resp.StatusCode, url.String()))
	}

	return resp, err
}

const (
	backoff = time.Second * 3
)

// doGetWithRetry attempts a request once, retrying server errors only when
// the client is configured with retries. The default is a single attempt.
func (c *Client) doGetWithRetry(headers map[string]string, url string) (*http.Response, error) {
	var resp *http.Response
	var err error

	attempts := 1 + c.retries
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err = c.doGet(headers, url)
		if err == nil || (err != nil && resp == nil) {
			// success
			// or error with no response
			break
		}
		if resp.StatusCode < http.StatusInternalServerError &&
			resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		// server error, try again with backoff
		if attempt+1 < attempts {
			log.Printf("got err %d: retry backoff attempt %d of %d\n",
				resp.StatusCode,
				attempt+1,
				attempts)
			time.Sleep(backoff)
		}
	}

	return resp, err
}

func (c *Client) GetWith(headers map[string]string, url string) (http.Header, []byte, error) {
	resp, err := c.doGetWithRetry(headers, url)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.Header, body, err
}

func (c *Client) Get(url string) (http.Header, []byte, error) {
	return c.GetWith(nil, url)
}

func (c *Client) GetJson(url string, result interface{}) error {
	return c.GetJsonWith(nil, url, result)
}

func (c *Client) GetJsonWith(headers map[string]string, url string, result interface{}) error {
	resp, err := c.doGetWithRetry(headers, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	decoder := json.NewDecoder(resp.Body)
	if err = decoder.Decode(result); err != nil {
		return err
	}
	return nil
}
