package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
)

const sampleImage = "data:image/png;base64,iVBORw0KGgo="

func TestProfileState_UpdateOverwrites(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	p := NewProfileState(mem, logging.Nop())
	p.Load(ctx, 1)

	p.UpdateImage(ctx, sampleImage)
	require.Equal(t, sampleImage, p.Image())

	p.UpdateImage(ctx, "data:image/png;base64,AAAA")
	require.Equal(t, "data:image/png;base64,AAAA", p.Image())

	fresh := NewProfileState(mem, logging.Nop())
	fresh.Load(ctx, 1)
	require.Equal(t, "data:image/png;base64,AAAA", fresh.Image())
}

func TestProfileState_UpdateWithoutUserIsIgnored(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	p := NewProfileState(mem, logging.Nop())

	p.UpdateImage(ctx, sampleImage)

	require.Empty(t, p.Image(), "nothing to associate the image with")
	require.False(t, mem.Has(storage.UserKey("profile", 0)))
}

func TestProfileState_LoadIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	p := NewProfileState(mem, logging.Nop())

	p.Load(ctx, 1)
	p.UpdateImage(ctx, sampleImage)

	p.Load(ctx, 2)
	require.Empty(t, p.Image())

	p.Load(ctx, 1)
	require.Equal(t, sampleImage, p.Image())
}

func TestProfileState_Clear(t *testing.T) {
	ctx := context.Background()
	p := NewProfileState(storage.NewMemory(), logging.Nop())
	p.Load(ctx, 1)
	p.UpdateImage(ctx, sampleImage)

	p.Clear()

	require.Empty(t, p.Image())
	require.Zero(t, p.CurrentUserID())
}
