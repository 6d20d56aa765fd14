// Package placeholder talks to the JSONPlaceholder-style directory that
// doubles as the user directory (/users) and the book catalog source
// (/posts). Both endpoints are read-only.
package placeholder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookkeeper/internal/models"
)

// Client is a thin HTTP client over the remote directory.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the directory at baseURL. Every request
// is bounded by timeout; there is no retry.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Users fetches the complete user directory.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// post mirrors the source schema of a catalog entry.
type post struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Books fetches the catalog entries and maps each to a Book: the author
// label is synthesized from the source-side owner id and every book
// starts available (the source has no rental concept).
func (c *Client) Books(ctx context.Context) ([]models.Book, error) {
	var posts []post
	if err := c.getJSON(ctx, "/posts", &posts); err != nil {
		return nil, err
	}

	books := make([]models.Book, 0, len(posts))
	for _, p := range posts {
		books = append(books, models.Book{
			ID:          p.ID,
			Title:       p.Title,
			Author:      fmt.Sprintf("Author %d", p.UserID),
			Description: p.Body,
			Available:   true,
		})
	}
	return books, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %s", path, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if err := jsoniter.ConfigFastest.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
