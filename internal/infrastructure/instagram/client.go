// Package instagram reads a business account's media through the Graph API.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://graph.instagram.com"
	mediaFields    = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp"
)

// Media is one item of the upstream feed, as returned by the API.
type Media struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Permalink    string `json:"permalink"`
	Timestamp    string `json:"timestamp"`
}

type mediaPage struct {
	Data   []Media `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

type Config struct {
	BaseURL     string
	AccessToken string
	Limit       int // max items fetched per run
	Timeout     time.Duration
}

type Client struct {
	baseURL string
	token   string
	limit   int
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 50
	}
	return &Client{
		baseURL: base,
		token:   cfg.AccessToken,
		limit:   limit,
		http:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an access token is present.
func (c *Client) Configured() bool {
	return c != nil && strings.TrimSpace(c.token) != ""
}

// FetchMedia returns up to the configured limit of the account's latest media, following
// paging.next links. Any failed page fails the whole fetch.
func (c *Client) FetchMedia(ctx context.Context) ([]Media, error) {
	first, err := c.firstPageURL()
	if err != nil {
		return nil, err
	}

	items := make([]Media, 0, c.limit)
	next := first
	for next != "" && len(items) < c.limit {
		page, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Data...)
		next = page.Paging.Next
	}
	if len(items) > c.limit {
		items = items[:c.limit]
	}
	return items, nil
}

func (c *Client) firstPageURL() (string, error) {
	u, err := url.Parse(c.baseURL + "/me/media")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("fields", mediaFields)
	q.Set("limit", fmt.Sprint(min(c.limit, 100)))
	q.Set("access_token", c.token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, u string) (*mediaPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("instagram request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("instagram read body: %w", err)
	}

	var page mediaPage
	decodeErr := json.Unmarshal(b, &page)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && page.Error != nil {
			return nil, fmt.Errorf("instagram http %d: %s", resp.StatusCode, page.Error.Message)
		}
		return nil, fmt.Errorf("instagram http %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("instagram decode: %w", decodeErr)
	}
	return &page, nil
}
