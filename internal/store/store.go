package store

import (
	"context"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

// Store aggregates the five state slices behind one explicitly
// constructed container, injected into consumers at startup. There are
// no hidden globals: everything reachable from here was passed in.
type Store struct {
	Auth     *AuthState
	Catalog  *CatalogState
	Rentals  *RentalState
	Wishlist *WishlistState
	Profile  *ProfileState
}

// New builds the container over the given persistence adapter. The
// global slices (auth, catalog) rehydrate immediately; the per-user
// slices stay empty until a session loads them.
func New(ctx context.Context, persist storage.Store, log logging.Logger) *Store {
	return &Store{
		Auth:     NewAuthState(ctx, persist, log),
		Catalog:  NewCatalogState(ctx, persist, log),
		Rentals:  NewRentalState(persist, log),
		Wishlist: NewWishlistState(persist, log),
		Profile:  NewProfileState(persist, log),
	}
}
