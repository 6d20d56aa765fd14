package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/models"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

const rentalsSlice = "rentals"

// rentalPeriod is the fixed rental window. The due time is always the
// start time plus exactly this, fixed at creation.
const rentalPeriod = 24 * time.Hour

// nowFn is a test seam for the clock.
var nowFn = time.Now

// rentalsSnapshot is the persisted shape of the rental slice.
type rentalsSnapshot struct {
	Rentals []models.Rental `json:"rentals"`
}

// RentalState holds the current user's rentals in rental order, tagged
// with that user's id. Switching users fully replaces the list via
// Load; rentals of different users never mix in memory.
type RentalState struct {
	persist storage.Store
	log     logging.Logger

	rentals       []models.Rental
	currentUserID int64
}

// NewRentalState builds an empty, untagged slice. Per-user data arrives
// via Load once a session is established.
func NewRentalState(persist storage.Store, log logging.Logger) *RentalState {
	return &RentalState{persist: persist, log: log}
}

// Load replaces the rental list with the persisted list for userID
// (empty if none) and tags the slice with that user.
func (r *RentalState) Load(ctx context.Context, userID int64) {
	r.rentals = nil
	r.currentUserID = userID

	data, err := r.persist.Load(ctx, storage.UserKey(rentalsSlice, userID))
	if err != nil {
		r.log.Warn(ctx, "rentals load failed, starting empty", "userID", userID, "error", err)
		return
	}
	if data == nil {
		return
	}

	var snap rentalsSnapshot
	if err := jsoniter.ConfigFastest.Unmarshal(data, &snap); err != nil {
		r.log.Warn(ctx, "rentals snapshot unreadable, starting empty", "userID", userID, "error", err)
		return
	}
	r.rentals = snap.Rentals
}

// Add appends a new rental starting now and due in exactly 24 hours,
// then persists. The caller is responsible for having checked the
// book's availability and for flipping it separately; this slice does
// not cross-validate against the catalog.
func (r *RentalState) Add(ctx context.Context, bookID int64, bookTitle string, userID int64) models.Rental {
	start := nowFn()
	rental := models.Rental{
		ID:        fmt.Sprintf("rental-%d-%s", start.UnixMilli(), uuid.NewString()[:8]),
		BookID:    bookID,
		BookTitle: bookTitle,
		UserID:    userID,
		StartedAt: start,
		DueAt:     start.Add(rentalPeriod),
	}
	r.rentals = append(r.rentals, rental)
	r.save(ctx)
	return rental
}

// Return marks the rental as returned and stamps the return time.
// Unknown ids and already-returned rentals are ignored.
func (r *RentalState) Return(ctx context.Context, rentalID string) {
	for i := range r.rentals {
		if r.rentals[i].ID != rentalID {
			continue
		}
		if r.rentals[i].Returned {
			return
		}
		returnedAt := nowFn()
		r.rentals[i].Returned = true
		r.rentals[i].ReturnedAt = &returnedAt
		r.save(ctx)
		return
	}
}

// Find returns the rental with the given id.
func (r *RentalState) Find(rentalID string) (models.Rental, bool) {
	for _, rental := range r.rentals {
		if rental.ID == rentalID {
			return rental, true
		}
	}
	return models.Rental{}, false
}

// Clear empties the list and unsets the user tag. Used on logout; the
// persisted data stays intact for the next login.
func (r *RentalState) Clear() {
	r.rentals = nil
	r.currentUserID = 0
}

// Rentals returns the current user's rentals in rental order.
func (r *RentalState) Rentals() []models.Rental { return r.rentals }

// Active returns the number of rentals not yet returned.
func (r *RentalState) Active() int {
	n := 0
	for _, rental := range r.rentals {
		if !rental.Returned {
			n++
		}
	}
	return n
}

func (r *RentalState) CurrentUserID() int64 { return r.currentUserID }

func (r *RentalState) save(ctx context.Context) {
	if r.currentUserID == 0 {
		return
	}
	data, err := jsoniter.ConfigFastest.Marshal(rentalsSnapshot{Rentals: r.rentals})
	if err != nil {
		r.log.Warn(ctx, "rentals marshal failed", "error", err)
		return
	}
	if err := r.persist.Save(ctx, storage.UserKey(rentalsSlice, r.currentUserID), data); err != nil {
		r.log.Warn(ctx, "rentals save failed", "error", err)
	}
}
