package cli

import (
	"context"
	"fmt"
	"log"
)

// Wish adds a book to the wishlist. Adding a wishlisted book again
// changes nothing.
func (a *App) Wish(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}
	bookID, ok := parseID(args, "wish <book-id>")
	if !ok {
		return
	}
	if _, found := a.store.Catalog.Book(bookID); !found {
		log.Printf("No book with id %d", bookID)
		return
	}
	a.store.Wishlist.Add(ctx, bookID)
	log.Printf("Added to wishlist")
}

// Unwish removes a book from the wishlist.
func (a *App) Unwish(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}
	bookID, ok := parseID(args, "unwish <book-id>")
	if !ok {
		return
	}
	a.store.Wishlist.Remove(ctx, bookID)
	log.Printf("Removed from wishlist")
}

// ShowWishlist lists the wishlisted books in insertion order.
func (a *App) ShowWishlist(ctx context.Context) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}

	ids := a.store.Wishlist.BookIDs()
	if len(ids) == 0 {
		fmt.Println("Wishlist is empty")
		return
	}
	for _, id := range ids {
		if b, found := a.store.Catalog.Book(id); found {
			a.printBook(b)
			continue
		}
		fmt.Printf("%4d (not in catalog)\n", id)
	}
}
