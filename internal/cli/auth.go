package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/bookkeeper/internal/store"
)

// Login prompts for a username and establishes a session: the username
// is resolved against the remote directory, the previous user's
// in-memory state is cleared, and the new user's rentals, wishlist and
// profile are loaded.
func (a *App) Login(ctx context.Context) {

	if a.isLoggedIn() {
		log.Printf("Already signed in as %s, logout first", a.store.Auth.User().Username)
		return
	}

	username, err := GetSimpleText(a.reader, "Enter username (e.g. Bret)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if username == "" {
		log.Printf("Please enter a username")
		return
	}

	user, err := a.session.Login(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Printf("User not found. Try: Bret, Antonette, Samantha, Karianne, Kamren")
		} else {
			log.Printf("Login failed: %s", err.Error())
		}
		return
	}

	log.Printf("Welcome, %s!", user.Name)
}

// Logout clears the per-user slices and the session.
func (a *App) Logout(ctx context.Context) {
	if !a.isLoggedIn() {
		log.Printf("Not signed in")
		return
	}
	a.session.Logout(ctx)
	log.Printf("Signed out")
}
