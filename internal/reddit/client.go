// Package reddit fetches the monthly "looking for work" megathread and its
// top-level comments through Reddit's public JSON endpoints. No auth, no
// browser — just the .json views with a custom User-Agent.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Traverser25/GetCoditer/internal/models"
)

const (
	defaultBaseURL = "https://www.reddit.com"
	httpTimeout    = 10 * time.Second
	userAgent      = "Mozilla/5.0 (GetCoditer/1.0)"
	searchLimit    = 15
)

// Client talks to one subreddit.
type Client struct {
	BaseURL   string // overridable for tests
	Subreddit string
	Query     string
	client    *http.Client
}

func NewClient(subreddit, query string) *Client {
	return &Client{
		BaseURL:   defaultBaseURL,
		Subreddit: subreddit,
		Query:     query,
		client:    &http.Client{Timeout: httpTimeout},
	}
}

// thing mirrors one Reddit API object. Posts and comments share the shape;
// unused fields just stay zero.
type thing struct {
	Kind string `json:"kind"`
	Data struct {
		Title     string `json:"title"`
		Permalink string `json:"permalink"`
		Selftext  string `json:"selftext"`
		Author    string `json:"author"`
		Score     int    `json:"score"`
		Body      string `json:"body"`
	} `json:"data"`
}

type listing struct {
	Data struct {
		Children []thing `json:"children"`
	} `json:"data"`
}

// Thread is one fetched megathread: the post itself plus its usable
// top-level comments.
type Thread struct {
	Title    string
	Body     string
	Comments []models.RawComment
}

// SearchMegathread searches the subreddit for the monthly megathread whose
// title names now's month and year (e.g. "june 2025") and returns its
// permalink.
func (c *Client) SearchMegathread(ctx context.Context, now time.Time) (string, error) {
	params := url.Values{}
	params.Set("q", c.Query)
	params.Set("restrict_sr", "on")
	params.Set("sort", "new")
	params.Set("limit", strconv.Itoa(searchLimit))

	endpoint := fmt.Sprintf("%s/r/%s/search.json?%s", c.BaseURL, c.Subreddit, params.Encode())

	var result listing
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", fmt.Errorf("failed to search r/%s: %w", c.Subreddit, err)
	}

	monthYear := strings.ToLower(now.Format("January 2006"))
	for _, post := range result.Data.Children {
		title := strings.ToLower(post.Data.Title)
		if strings.Contains(title, "monthly megathread") && strings.Contains(title, monthYear) {
			return post.Data.Permalink, nil
		}
	}

	return "", fmt.Errorf("no megathread matching %q found in r/%s", monthYear, c.Subreddit)
}

// FetchThread retrieves a post and its top-level comments. Comments with an
// empty body or a deleted author are dropped; ordering and uniqueness are
// whatever Reddit returns.
func (c *Client) FetchThread(ctx context.Context, permalink string) (*Thread, error) {
	endpoint := c.BaseURL + permalink + ".json"

	// a post's .json view is a two-element array: [post listing, comment listing]
	var listings []listing
	if err := c.getJSON(ctx, endpoint, &listings); err != nil {
		return nil, fmt.Errorf("failed to fetch thread %s: %w", permalink, err)
	}
	if len(listings) < 2 || len(listings[0].Data.Children) == 0 {
		return nil, fmt.Errorf("unexpected thread structure at %s", permalink)
	}

	post := listings[0].Data.Children[0]
	thread := &Thread{
		Title: post.Data.Title,
		Body:  post.Data.Selftext,
	}

	for _, item := range listings[1].Data.Children {
		if item.Kind != "t1" {
			continue
		}
		if item.Data.Body == "" || item.Data.Author == "[deleted]" {
			continue
		}
		thread.Comments = append(thread.Comments, models.RawComment{
			Author: item.Data.Author,
			Score:  item.Data.Score,
			Body:   item.Data.Body,
		})
	}

	return thread, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reddit returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}
