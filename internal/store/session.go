package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/models"
)

// ErrUserNotFound is the lookup-miss outcome: no directory entry
// matches the requested username. It is a normal negative result, not a
// failure; nothing is mutated when it is returned.
var ErrUserNotFound = errors.New("user not found")

// Directory resolves usernames against the remote user directory.
// *placeholder.Client satisfies it.
type Directory interface {
	Users(ctx context.Context) ([]models.User, error)
}

// Session sequences the cross-slice login/logout transitions so call
// sites cannot get the ordering wrong.
type Session struct {
	store     *Store
	directory Directory
	log       logging.Logger
}

func NewSession(store *Store, directory Directory, log logging.Logger) *Session {
	return &Session{store: store, directory: directory, log: log}
}

// Login looks the username up in the directory (case-insensitive exact
// match, first match wins) and, on a hit, switches every slice to that
// user: per-user slices are cleared first in case a previous session's
// data lingered in memory, then auth is set, then the user's persisted
// rental, wishlist and profile data is loaded.
func (s *Session) Login(ctx context.Context, username string) (models.User, error) {
	users, err := s.directory.Users(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("directory lookup: %w", err)
	}

	user, ok := findUser(users, username)
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	s.store.Rentals.Clear()
	s.store.Wishlist.Clear()
	s.store.Profile.Clear()

	s.store.Auth.Login(ctx, user)
	s.loadUserData(ctx, user.ID)

	s.log.Info(ctx, "user signed in", "userID", user.ID, "username", user.Username)
	return user, nil
}

// Logout clears the per-user slices and then the auth slice. The users'
// persisted data stays intact and is recovered on their next login.
func (s *Session) Logout(ctx context.Context) {
	s.store.Rentals.Clear()
	s.store.Wishlist.Clear()
	s.store.Profile.Clear()
	s.store.Auth.Logout(ctx)

	s.log.Info(ctx, "user signed out")
}

// Restore loads the per-user slices for an already-authenticated
// session, e.g. after a process restart rehydrated the auth slice.
// When the rental slice is already tagged with the signed-in user the
// reload is skipped.
func (s *Session) Restore(ctx context.Context) {
	user := s.store.Auth.User()
	if user == nil {
		return
	}
	if s.store.Rentals.CurrentUserID() == user.ID {
		return
	}
	s.loadUserData(ctx, user.ID)
}

func (s *Session) loadUserData(ctx context.Context, userID int64) {
	s.store.Rentals.Load(ctx, userID)
	s.store.Wishlist.Load(ctx, userID)
	s.store.Profile.Load(ctx, userID)
}

// findUser returns the first user whose username equals name ignoring
// case.
func findUser(users []models.User, name string) (models.User, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Username, name) {
			return u, true
		}
	}
	return models.User{}, false
}
