package cli

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Rentals lists the signed-in user's rental history, newest last.
func (a *App) Rentals(ctx context.Context) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}

	rentals := a.store.Rentals.Rentals()
	if len(rentals) == 0 {
		fmt.Println("No rentals yet")
		return
	}

	now := time.Now()
	for _, r := range rentals {
		status := fmt.Sprintf("due %s", r.DueAt.Format("2006-01-02 15:04"))
		switch {
		case r.Returned:
			status = fmt.Sprintf("returned %s", r.ReturnedAt.Format("2006-01-02 15:04"))
		case r.Overdue(now):
			status = fmt.Sprintf("OVERDUE, was due %s", r.DueAt.Format("2006-01-02 15:04"))
		}
		fmt.Printf("%s  %s (%s)\n", r.ID, r.BookTitle, status)
	}
	fmt.Printf("%d active of %d total\n", a.store.Rentals.Active(), len(rentals))
}
