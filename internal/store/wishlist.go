package store

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

const wishlistSlice = "wishlist"

// wishlistSnapshot is the persisted shape of the wishlist slice.
type wishlistSnapshot struct {
	Wishlist []int64 `json:"wishlist"`
}

// WishlistState holds the current user's wishlisted book ids. Semantics
// are a set (no duplicates), but insertion order is preserved for
// display.
type WishlistState struct {
	persist storage.Store
	log     logging.Logger

	bookIDs       []int64
	currentUserID int64
}

func NewWishlistState(persist storage.Store, log logging.Logger) *WishlistState {
	return &WishlistState{persist: persist, log: log}
}

// Load replaces the wishlist with the persisted set for userID (empty
// if none) and tags the slice with that user.
func (w *WishlistState) Load(ctx context.Context, userID int64) {
	w.bookIDs = nil
	w.currentUserID = userID

	data, err := w.persist.Load(ctx, storage.UserKey(wishlistSlice, userID))
	if err != nil {
		w.log.Warn(ctx, "wishlist load failed, starting empty", "userID", userID, "error", err)
		return
	}
	if data == nil {
		return
	}

	var snap wishlistSnapshot
	if err := jsoniter.ConfigFastest.Unmarshal(data, &snap); err != nil {
		w.log.Warn(ctx, "wishlist snapshot unreadable, starting empty", "userID", userID, "error", err)
		return
	}
	w.bookIDs = snap.Wishlist
}

// Add appends bookID and persists. Adding an id already present is a
// no-op, so Add is idempotent.
func (w *WishlistState) Add(ctx context.Context, bookID int64) {
	if w.Contains(bookID) {
		return
	}
	w.bookIDs = append(w.bookIDs, bookID)
	w.save(ctx)
}

// Remove drops bookID if present and persists. Absent ids are ignored.
func (w *WishlistState) Remove(ctx context.Context, bookID int64) {
	kept := w.bookIDs[:0]
	for _, id := range w.bookIDs {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	w.bookIDs = kept
	w.save(ctx)
}

// Contains reports whether bookID is wishlisted.
func (w *WishlistState) Contains(bookID int64) bool {
	for _, id := range w.bookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist and unsets the user tag.
func (w *WishlistState) Clear() {
	w.bookIDs = nil
	w.currentUserID = 0
}

// BookIDs returns the wishlisted ids in insertion order.
func (w *WishlistState) BookIDs() []int64 { return w.bookIDs }

func (w *WishlistState) CurrentUserID() int64 { return w.currentUserID }

func (w *WishlistState) save(ctx context.Context) {
	if w.currentUserID == 0 {
		return
	}
	data, err := jsoniter.ConfigFastest.Marshal(wishlistSnapshot{Wishlist: w.bookIDs})
	if err != nil {
		w.log.Warn(ctx, "wishlist marshal failed", "error", err)
		return
	}
	if err := w.persist.Save(ctx, storage.UserKey(wishlistSlice, w.currentUserID), data); err != nil {
		w.log.Warn(ctx, "wishlist save failed", "error", err)
	}
}
