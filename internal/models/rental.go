package models

import "time"

// Rental records one book rented by one user. The due time is fixed at
// creation (start + rental window) and never recomputed. A rental is
// mutated exactly once, on return.
type Rental struct {
	ID         string     `json:"id"`
	BookID     int64      `json:"bookId"`
	BookTitle  string     `json:"bookTitle"`
	UserID     int64      `json:"userId"`
	StartedAt  time.Time  `json:"rentalStartTime"`
	DueAt      time.Time  `json:"dueDate"`
	Returned   bool       `json:"returned"`
	ReturnedAt *time.Time `json:"returnTime,omitempty"`
}

// Overdue reports whether the rental has passed its due time without
// being returned. Display-only; never persisted.
func (r Rental) Overdue(now time.Time) bool {
	return !r.Returned && now.After(r.DueAt)
}
