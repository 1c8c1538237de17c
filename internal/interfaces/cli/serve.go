package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/interfaces/http/handler"
	"github.com/boardsandcats/storefront/internal/interfaces/http/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP facade",
	Long: `Run a local HTTP server exposing the cart, catalog, wishlist and session
endpoints. The cart sync engine stays resident, so debounced pushes fire as
they would in the shop frontend.`,
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine := router.New(a.Log, router.Handlers{
			Cart:     handler.NewCartHandler(a.Cart, a.Catalog),
			Catalog:  handler.NewCatalogHandler(a.Catalog),
			Wishlist: handler.NewWishlistHandler(a.Wishlist),
			Session:  handler.NewSessionHandler(a.Identity),
		})

		srv := &http.Server{
			Addr:    a.Config.Serve.Addr,
			Handler: engine,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		a.Log.Info("Facade listening", zap.String("addr", a.Config.Serve.Addr))

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		// push whatever is pending before the process goes away
		a.Cart.Flush(shutdownCtx)
		return nil
	}),
}
