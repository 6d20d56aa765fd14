package store

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/models"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

const authSlice = "auth"

// authSnapshot is the persisted shape of the auth slice.
type authSnapshot struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// AuthState tracks the signed-in user. It is persisted under a single
// global key: only one user is signed in at a time.
type AuthState struct {
	persist storage.Store
	log     logging.Logger

	user          *models.User
	authenticated bool
}

// NewAuthState builds the slice and rehydrates it from storage.
// An absent or unparseable snapshot yields the signed-out state.
func NewAuthState(ctx context.Context, persist storage.Store, log logging.Logger) *AuthState {
	a := &AuthState{persist: persist, log: log}

	data, err := persist.Load(ctx, storage.Key(authSlice))
	if err != nil {
		log.Warn(ctx, "auth state load failed, starting signed out", "error", err)
		return a
	}
	if data == nil {
		return a
	}

	var snap authSnapshot
	if err := jsoniter.ConfigFastest.Unmarshal(data, &snap); err != nil {
		log.Warn(ctx, "auth state snapshot unreadable, starting signed out", "error", err)
		return a
	}
	a.user = snap.User
	a.authenticated = snap.IsAuthenticated
	return a
}

// Login transitions to the signed-in state and persists it.
func (a *AuthState) Login(ctx context.Context, user models.User) {
	a.user = &user
	a.authenticated = true
	a.save(ctx)
}

// Logout transitions to the signed-out state and deletes the persisted
// key entirely, so no stale user survives a corrupted partial write.
func (a *AuthState) Logout(ctx context.Context) {
	a.user = nil
	a.authenticated = false
	if err := a.persist.Delete(ctx, storage.Key(authSlice)); err != nil {
		a.log.Warn(ctx, "auth state delete failed", "error", err)
	}
}

// User returns the signed-in user, or nil when signed out.
func (a *AuthState) User() *models.User { return a.user }

func (a *AuthState) IsAuthenticated() bool { return a.authenticated }

func (a *AuthState) save(ctx context.Context) {
	data, err := jsoniter.ConfigFastest.Marshal(authSnapshot{User: a.user, IsAuthenticated: a.authenticated})
	if err != nil {
		a.log.Warn(ctx, "auth state marshal failed", "error", err)
		return
	}
	if err := a.persist.Save(ctx, storage.Key(authSlice), data); err != nil {
		a.log.Warn(ctx, "auth state save failed", "error", err)
	}
}
