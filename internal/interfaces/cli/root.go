// Package cli wires the storefront services into a cobra command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string reported by the root command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Board game shop client",
	Long: `storefront - command line client for the boardsandcats board game shop.

The cart lives locally and survives restarts; while signed in it is kept in
sync with the shop backend automatically.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		registerCmd,
		catalogCmd,
		cartCmd,
		checkoutCmd,
		ordersCmd,
		paymentsCmd,
		addressesCmd,
		wishlistCmd,
		serveCmd,
	)
}
