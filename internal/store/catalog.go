package store

import (
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/models"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

const catalogSlice = "books"

// Source supplies the book catalog. *placeholder.Client satisfies it.
type Source interface {
	Books(ctx context.Context) ([]models.Book, error)
}

// catalogSnapshot is the persisted shape of the catalog slice. The
// search query is ephemeral and deliberately not part of it.
type catalogSnapshot struct {
	Books []models.Book `json:"books"`
}

// CatalogState holds the fetched book list in fetch order, the fetch
// status, and the current search query. It is persisted globally and
// shared across users.
type CatalogState struct {
	persist storage.Store
	log     logging.Logger

	books       []models.Book
	loading     bool
	fetchErr    string
	searchQuery string
}

// NewCatalogState builds the slice and rehydrates the book list from
// storage. An absent or unreadable snapshot yields an empty catalog.
func NewCatalogState(ctx context.Context, persist storage.Store, log logging.Logger) *CatalogState {
	c := &CatalogState{persist: persist, log: log}

	data, err := persist.Load(ctx, storage.Key(catalogSlice))
	if err != nil {
		log.Warn(ctx, "catalog state load failed, starting empty", "error", err)
		return c
	}
	if data == nil {
		return c
	}

	var snap catalogSnapshot
	if err := jsoniter.ConfigFastest.Unmarshal(data, &snap); err != nil {
		log.Warn(ctx, "catalog snapshot unreadable, starting empty", "error", err)
		return c
	}
	c.books = snap.Books
	return c
}

// Fetch replaces the whole catalog with the source's current list.
// While in flight the loading flag is set and the error cleared. On
// failure the previous book list is left untouched and the failure
// message is recorded, so a retry is always safe: a successful fetch
// replaces, never appends.
func (c *CatalogState) Fetch(ctx context.Context, src Source) error {
	c.loading = true
	c.fetchErr = ""

	books, err := src.Books(ctx)
	c.loading = false
	if err != nil {
		c.fetchErr = err.Error()
		return err
	}

	c.books = books
	c.save(ctx)
	return nil
}

// SetSearchQuery updates the ephemeral search filter. Never persisted.
func (c *CatalogState) SetSearchQuery(query string) {
	c.searchQuery = query
}

// SetAvailability flips the availability flag of the book with the
// given id and persists. Unknown ids are ignored.
func (c *CatalogState) SetAvailability(ctx context.Context, bookID int64, available bool) {
	for i := range c.books {
		if c.books[i].ID == bookID {
			c.books[i].Available = available
			c.save(ctx)
			return
		}
	}
}

// Book returns the catalog entry with the given id.
func (c *CatalogState) Book(bookID int64) (models.Book, bool) {
	for _, b := range c.books {
		if b.ID == bookID {
			return b, true
		}
	}
	return models.Book{}, false
}

// Books returns the full catalog in fetch order.
func (c *CatalogState) Books() []models.Book { return c.books }

// Filtered returns the books matching the current search query: the
// query is a case-insensitive substring of title, author, or
// description. An empty query matches everything.
func (c *CatalogState) Filtered() []models.Book {
	if c.searchQuery == "" {
		return c.books
	}
	query := strings.ToLower(c.searchQuery)

	matched := make([]models.Book, 0, len(c.books))
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) ||
			strings.Contains(strings.ToLower(b.Description), query) {
			matched = append(matched, b)
		}
	}
	return matched
}

func (c *CatalogState) Loading() bool       { return c.loading }
func (c *CatalogState) Err() string         { return c.fetchErr }
func (c *CatalogState) SearchQuery() string { return c.searchQuery }

func (c *CatalogState) save(ctx context.Context) {
	data, err := jsoniter.ConfigFastest.Marshal(catalogSnapshot{Books: c.books})
	if err != nil {
		c.log.Warn(ctx, "catalog state marshal failed", "error", err)
		return
	}
	if err := c.persist.Save(ctx, storage.Key(catalogSlice), data); err != nil {
		c.log.Warn(ctx, "catalog state save failed", "error", err)
	}
}
