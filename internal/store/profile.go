package store

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

const profileSlice = "profile"

// profileSnapshot is the persisted shape of the profile slice.
type profileSnapshot struct {
	ProfileImage string `json:"profileImage"`
}

// ProfileState holds the current user's profile image as an encoded
// payload (a data URI). At most one image per user; updates overwrite.
type ProfileState struct {
	persist storage.Store
	log     logging.Logger

	image         string
	currentUserID int64
}

func NewProfileState(persist storage.Store, log logging.Logger) *ProfileState {
	return &ProfileState{persist: persist, log: log}
}

// Load replaces the image with the persisted value for userID (empty if
// none) and tags the slice with that user.
func (p *ProfileState) Load(ctx context.Context, userID int64) {
	p.image = ""
	p.currentUserID = userID

	data, err := p.persist.Load(ctx, storage.UserKey(profileSlice, userID))
	if err != nil {
		p.log.Warn(ctx, "profile load failed, starting empty", "userID", userID, "error", err)
		return
	}
	if data == nil {
		return
	}

	var snap profileSnapshot
	if err := jsoniter.ConfigFastest.Unmarshal(data, &snap); err != nil {
		p.log.Warn(ctx, "profile snapshot unreadable, starting empty", "userID", userID, "error", err)
		return
	}
	p.image = snap.ProfileImage
}

// UpdateImage overwrites the stored image for the current user and
// persists. Without a current user there is nothing to associate the
// image with, so the update is silently ignored.
func (p *ProfileState) UpdateImage(ctx context.Context, image string) {
	if p.currentUserID == 0 {
		return
	}
	p.image = image
	p.save(ctx)
}

// Clear unsets the image and the user tag.
func (p *ProfileState) Clear() {
	p.image = ""
	p.currentUserID = 0
}

// Image returns the stored image payload, or "" when none is set.
func (p *ProfileState) Image() string { return p.image }

func (p *ProfileState) CurrentUserID() int64 { return p.currentUserID }

func (p *ProfileState) save(ctx context.Context) {
	data, err := jsoniter.ConfigFastest.Marshal(profileSnapshot{ProfileImage: p.image})
	if err != nil {
		p.log.Warn(ctx, "profile marshal failed", "error", err)
		return
	}
	if err := p.persist.Save(ctx, storage.UserKey(profileSlice, p.currentUserID), data); err != nil {
		p.log.Warn(ctx, "profile save failed", "error", err)
	}
}
