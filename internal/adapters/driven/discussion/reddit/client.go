// Package reddit implements the discussion retriever against the
// public Reddit search API. One subreddit, one time window, no auth.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
	"github.com/TonyLeary/nms-companion/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.DiscussionRetriever = (*Client)(nil)

const (
	// DefaultBaseURL is the public Reddit endpoint.
	DefaultBaseURL = "https://www.reddit.com"

	// DefaultSubreddit is the community the companion searches.
	DefaultSubreddit = "NoMansSkyTheGame"

	// DefaultWindow is the search time window.
	DefaultWindow = "month"

	// DefaultLimit is how many posts one fetch requests.
	DefaultLimit = 50

	// DefaultTimeout bounds a single request. The ask pipeline applies
	// its own, tighter budget on top via context.
	DefaultTimeout = 8 * time.Second

	// requestsPerSecond throttles unauthenticated API use proactively,
	// well under Reddit's documented limit.
	requestsPerSecond = 0.5

	// userAgent identifies the app; Reddit rejects default Go agents.
	userAgent = "nms-companion/1.0 (by /u/nms_companion_app)"
)

// Client fetches community posts from one subreddit.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	subreddit  string
	window     string
	limit      int
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Useful for testing.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithSubreddit overrides the searched subreddit.
func WithSubreddit(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.subreddit = name
		}
	}
}

// WithWindow overrides the search time window (hour, day, week, month, year).
func WithWindow(window string) Option {
	return func(c *Client) {
		if window != "" {
			c.window = window
		}
	}
}

// WithLimit overrides how many posts one fetch requests.
func WithLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a Reddit client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		baseURL:    DefaultBaseURL,
		subreddit:  DefaultSubreddit,
		window:     DefaultWindow,
		limit:      DefaultLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listing mirrors the slice of the Reddit search response we read.
type listing struct {
	Data struct {
		Children []struct {
			Data listingPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type listingPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Score       float64 `json:"score"`
	NumComments float64 `json:"num_comments"`
}

// Fetch returns recent posts matching the query. Fragments without an
// identifier or title are dropped here, before scoring ever sees them.
func (c *Client) Fetch(ctx context.Context, query string) ([]domain.ExternalPost, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch posts: status %d", resp.StatusCode)
	}

	var body listing
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.ExternalPost, 0, len(body.Data.Children))
	for _, child := range body.Data.Children {
		post := domain.ExternalPost{
			ID:       child.Data.ID,
			Title:    child.Data.Title,
			Body:     child.Data.SelfText,
			Forum:    child.Data.Subreddit,
			Author:   child.Data.Author,
			Score:    int(child.Data.Score),
			Comments: int(child.Data.NumComments),
		}
		if !post.Valid() {
			logger.Debug("Dropping malformed post fragment (id=%q)", post.ID)
			continue
		}
		posts = append(posts, post)
	}

	logger.Debug("Fetched %d posts from r/%s", len(posts), c.subreddit)
	return posts, nil
}

func (c *Client) searchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("restrict_sr", "1")
	params.Set("sort", "relevance")
	params.Set("t", c.window)
	params.Set("limit", strconv.Itoa(c.limit))
	return fmt.Sprintf("%s/r/%s/search.json?%s", c.baseURL, c.subreddit, params.Encode())
}
