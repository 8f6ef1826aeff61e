// Package github is a minimal client for the upstream repo-listing API.
package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrLookupFailed covers every upstream failure mode: network errors,
// timeouts, rate limiting and unknown usernames are intentionally not
// distinguished for the caller.
var ErrLookupFailed = errors.New("github lookup failed")

// Repo is the subset of the upstream repository payload the client exposes.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stargazers  int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	CreatedAt   string `json:"created_at"`
}

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient builds a client with a bounded timeout on every lookup. token
// may be empty; when set it raises the upstream rate limit.
func NewClient(token string) *Client {
	return &Client{
		baseURL: "https://api.github.com",
		token:   token,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL, token string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// ListRepos returns up to five of the user's repositories, oldest first.
func (c *Client) ListRepos(username string) ([]Repo, error) {
	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ErrLookupFailed
	}
	req.Header.Set("User-Agent", "devconnect")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, ErrLookupFailed
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrLookupFailed
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, ErrLookupFailed
	}
	return repos, nil
}
