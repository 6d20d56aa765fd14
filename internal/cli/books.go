package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/dmitrijs2005/bookkeeper/internal/models"
)

// Books lists the catalog, fetching it first when empty. With the
// -wishlist flag only wishlisted books are shown. An earlier fetch
// failure is reported with a hint to retry.
func (a *App) Books(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}

	if len(a.store.Catalog.Books()) == 0 {
		if err := a.fetchCatalog(ctx); err != nil {
			return
		}
	}

	wishlistOnly := len(args) > 0 && args[0] == "-wishlist"

	books := a.store.Catalog.Filtered()
	shown := 0
	for _, b := range books {
		if wishlistOnly && !a.store.Wishlist.Contains(b.ID) {
			continue
		}
		a.printBook(b)
		shown++
	}
	if shown == 0 {
		fmt.Println("No books found matching your search.")
		return
	}
	fmt.Printf("%d of %d books, %d active rentals\n", shown, len(a.store.Catalog.Books()), a.store.Rentals.Active())
}

// Search sets the catalog filter and lists the matches.
func (a *App) Search(ctx context.Context, query string) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}
	a.store.Catalog.SetSearchQuery(query)
	a.Books(ctx, nil)
}

// Rent creates a rental for an available book and flips its
// availability. Both steps are paired here so rental state and catalog
// state cannot drift apart.
func (a *App) Rent(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}
	bookID, ok := parseID(args, "rent <book-id>")
	if !ok {
		return
	}

	book, found := a.store.Catalog.Book(bookID)
	if !found {
		log.Printf("No book with id %d", bookID)
		return
	}
	if !book.Available {
		log.Printf("%q is currently rented", book.Title)
		return
	}

	user := a.store.Auth.User()
	rental := a.store.Rentals.Add(ctx, book.ID, book.Title, user.ID)
	a.store.Catalog.SetAvailability(ctx, book.ID, false)

	log.Printf("Successfully rented: %s (due %s, rental id %s)",
		book.Title, rental.DueAt.Format("2006-01-02 15:04"), rental.ID)
}

// Return marks a rental as returned and restores the book's
// availability.
func (a *App) Return(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}
	if len(args) == 0 {
		fmt.Println("Usage: return <rental-id>")
		return
	}
	rentalID := args[0]

	rental, found := a.store.Rentals.Find(rentalID)
	if !found {
		log.Printf("No rental with id %s", rentalID)
		return
	}
	if rental.Returned {
		log.Printf("Rental %s is already returned", rentalID)
		return
	}

	a.store.Rentals.Return(ctx, rentalID)
	a.store.Catalog.SetAvailability(ctx, rental.BookID, true)

	log.Printf("Returned: %s", rental.BookTitle)
}

func (a *App) fetchCatalog(ctx context.Context) error {
	fmt.Println("Loading books...")
	if err := a.store.Catalog.Fetch(ctx, a.catalog); err != nil {
		log.Printf("Failed to load books: %s (run 'books' to try again)", err.Error())
		return err
	}
	return nil
}

func (a *App) printBook(b models.Book) {
	status := "available"
	if !b.Available {
		status = "rented"
	}
	marker := " "
	if a.store.Wishlist.Contains(b.ID) {
		marker = "*"
	}
	fmt.Printf("%4d %s [%s] %s by %s\n", b.ID, marker, status, b.Title, b.Author)
}

func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Println("Usage: " + usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: " + usage)
		return 0, false
	}
	return id, true
}
