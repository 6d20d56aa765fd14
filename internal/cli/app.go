package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookkeeper/internal/config"
	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/placeholder"
	"github.com/dmitrijs2005/bookkeeper/internal/storage"
	"github.com/dmitrijs2005/bookkeeper/internal/store"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	persist storage.Store
	store   *store.Store
	session *store.Session
	catalog *placeholder.Client
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	persist, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	st := store.New(ctx, persist, log)
	client := placeholder.NewClient(cfg.DirectoryAddr, cfg.RequestTimeout)
	session := store.NewSession(st, client, log)

	// resume a persisted session from a previous run
	session.Restore(ctx)

	return &App{
		config:  cfg,
		log:     log,
		persist: persist,
		store:   st,
		session: session,
		catalog: client,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword), nil
	case "sqlite", "":
		return storage.NewSQLiteStore(ctx, cfg.SQLiteDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth.IsAuthenticated()
}

func (a *App) Run(ctx context.Context) {
	defer a.persist.Close()
	a.Root(ctx)
}
