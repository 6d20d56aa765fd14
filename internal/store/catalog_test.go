package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/models"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

// fakeSource implements Source for catalog tests.
type fakeSource struct {
	books []models.Book
	err   error
}

func (f *fakeSource) Books(context.Context) ([]models.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.books, nil
}

func sampleBooks() []models.Book {
	return []models.Book{
		{ID: 1, Title: "first book", Author: "Author 1", Description: "about nothing", Available: true},
		{ID: 2, Title: "Second Book", Author: "Author 2", Description: "overdue library fines", Available: true},
	}
}

func newCatalog(t *testing.T) (*CatalogState, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	return NewCatalogState(context.Background(), mem, logging.Nop()), mem
}

func TestCatalogState_FetchReplacesBooks(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))
	require.Len(t, c.Books(), 2)
	require.False(t, c.Loading())
	require.Empty(t, c.Err())
}

func TestCatalogState_SecondFetchReplacesNotMerges(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))
	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))

	require.Len(t, c.Books(), 2, "no duplicate identifiers may accumulate")
	seen := map[int64]bool{}
	for _, b := range c.Books() {
		require.False(t, seen[b.ID], "duplicate book id %d", b.ID)
		seen[b.ID] = true
	}
}

func TestCatalogState_FetchFailureKeepsBooks(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))

	err := c.Fetch(ctx, &fakeSource{err: errors.New("network down")})
	require.Error(t, err)
	require.Equal(t, "network down", c.Err())
	require.False(t, c.Loading())
	require.Len(t, c.Books(), 2, "existing catalog data must not be corrupted")

	// retry after failure succeeds and clears the error
	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()[:1]}))
	require.Empty(t, c.Err())
	require.Len(t, c.Books(), 1)
}

func TestCatalogState_FetchPersists(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	c := NewCatalogState(ctx, mem, logging.Nop())

	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))

	rehydrated := NewCatalogState(ctx, mem, logging.Nop())
	require.Len(t, rehydrated.Books(), 2)
	require.Equal(t, "first book", rehydrated.Books()[0].Title)
}

func TestCatalogState_SetAvailability(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	c := NewCatalogState(ctx, mem, logging.Nop())
	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))

	c.SetAvailability(ctx, 1, false)

	b, ok := c.Book(1)
	require.True(t, ok)
	require.False(t, b.Available)

	// the change is persisted
	rehydrated := NewCatalogState(ctx, mem, logging.Nop())
	b, ok = rehydrated.Book(1)
	require.True(t, ok)
	require.False(t, b.Available)
}

func TestCatalogState_SetAvailabilityUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))

	c.SetAvailability(ctx, 999, false)

	for _, b := range c.Books() {
		require.True(t, b.Available)
	}
}

func TestCatalogState_SearchQueryNotPersisted(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	c := NewCatalogState(ctx, mem, logging.Nop())
	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))

	c.SetSearchQuery("second")
	require.Equal(t, "second", c.SearchQuery())

	rehydrated := NewCatalogState(ctx, mem, logging.Nop())
	require.Empty(t, rehydrated.SearchQuery())
}

func TestCatalogState_Filtered(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "empty query matches all", query: "", want: 2},
		{name: "title match is case-insensitive", query: "SECOND", want: 1},
		{name: "author match", query: "author 1", want: 1},
		{name: "description match", query: "fines", want: 1},
		{name: "no match", query: "zzz", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SetSearchQuery(tt.query)
			require.Len(t, c.Filtered(), tt.want)
		})
	}
}

func TestCatalogState_FilteredEmptyFieldsBook(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	require.NoError(t, c.Fetch(ctx, &fakeSource{books: []models.Book{{ID: 7, Available: true}}}))

	c.SetSearchQuery("overdue")
	require.Empty(t, c.Filtered(), "empty title/author/description never matches a non-empty query")

	c.SetSearchQuery("")
	require.Len(t, c.Filtered(), 1, "empty query matches all books")
}

func TestCatalogState_SaveFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	mem.SaveErr = errors.New("quota exceeded")
	c := NewCatalogState(ctx, mem, logging.Nop())

	require.NoError(t, c.Fetch(ctx, &fakeSource{books: sampleBooks()}))
	require.Len(t, c.Books(), 2)
}
