package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cartapp "github.com/boardsandcats/storefront/internal/application/cart"
	catalogapp "github.com/boardsandcats/storefront/internal/application/catalog"
	identityapp "github.com/boardsandcats/storefront/internal/application/identity"
	orderapp "github.com/boardsandcats/storefront/internal/application/order"
	wishlistapp "github.com/boardsandcats/storefront/internal/application/wishlist"
	"github.com/boardsandcats/storefront/internal/infrastructure/api"
	"github.com/boardsandcats/storefront/internal/infrastructure/config"
	"github.com/boardsandcats/storefront/internal/infrastructure/localstore"
	"github.com/boardsandcats/storefront/internal/infrastructure/logger"
)

// App holds the wired services for one command invocation.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Store    *localstore.Store
	API      *api.Client
	Cart      *cartapp.Manager
	Catalog   *catalogapp.Service
	Identity  *identityapp.Service
	Addresses *identityapp.AddressService
	Orders    *orderapp.Service
	Wishlist  *wishlistapp.Service
}

// newApp bootstraps the application: config, logger, local store, API
// client, cart manager, then the services on top. Restore re-enters a stored
// session, which in turn triggers cart reconciliation through the observer
// chain.
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, err
	}

	store, err := localstore.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, log)

	cart := cartapp.NewManager(store, client, log,
		cartapp.WithDebounceWindow(cfg.Cart.DebounceWindow))

	catalog := catalogapp.NewService(client, log)
	identity := identityapp.NewService(client, store, client, log)
	identity.Subscribe(cart)
	identity.Restore(ctx)

	app := &App{
		Config:    cfg,
		Log:       log,
		Store:     store,
		API:       client,
		Cart:      cart,
		Catalog:   catalog,
		Identity:  identity,
		Addresses: identityapp.NewAddressService(client, identity),
		Orders:    orderapp.NewService(client, client, cart, identity, log),
		Wishlist:  wishlistapp.NewService(client, identity, log),
	}
	return app, nil
}

// Close releases the app's resources.
func (a *App) Close() {
	a.Cart.Close()
	if err := a.Store.Close(); err != nil {
		a.Log.Warn("Could not close local store", zap.Error(err))
	}
	_ = logger.Sync(a.Log)
}

// withApp bootstraps the app, runs fn and tears down afterwards.
func withApp(fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(ctx, a, args)
	}
}
