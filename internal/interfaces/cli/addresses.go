package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/boardsandcats/storefront/internal/domain/identity"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "List saved delivery addresses",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		addresses, err := a.Addresses.List(ctx)
		if err != nil {
			return err
		}
		if len(addresses) == 0 {
			fmt.Println("No saved addresses")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTREET\tCITY\tSTATE\tZIP")
		for _, addr := range addresses {
			fmt.Fprintf(w, "%d\t%s, %s\t%s\t%s\t%s\n",
				addr.ID, addr.Street, addr.Number, addr.City, addr.State, addr.Zip)
		}
		return w.Flush()
	}),
}

var addressFlags identity.Address

var addressesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new delivery address",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		created, err := a.Addresses.Create(ctx, addressFlags)
		if err != nil {
			return err
		}
		fmt.Printf("Address #%d saved\n", created.ID)
		return nil
	}),
}

var addressesRemoveCmd = &cobra.Command{
	Use:   "remove <address-id>",
	Short: "Delete a saved address",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *App, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid address id %q", args[0])
		}
		if err := a.Addresses.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("Address removed")
		return nil
	}),
}

func init() {
	addressesAddCmd.Flags().StringVar(&addressFlags.Street, "street", "", "street name")
	addressesAddCmd.Flags().StringVar(&addressFlags.Number, "number", "", "street number")
	addressesAddCmd.Flags().StringVar(&addressFlags.Neighborhood, "neighborhood", "", "neighborhood")
	addressesAddCmd.Flags().StringVar(&addressFlags.City, "city", "", "city")
	addressesAddCmd.Flags().StringVar(&addressFlags.State, "state", "", "two-letter state code")
	addressesAddCmd.Flags().StringVar(&addressFlags.Zip, "zip", "", "postal code")
	addressesAddCmd.Flags().StringVar(&addressFlags.Complement, "complement", "", "address complement")
	_ = addressesAddCmd.MarkFlagRequired("street")
	_ = addressesAddCmd.MarkFlagRequired("number")
	_ = addressesAddCmd.MarkFlagRequired("neighborhood")
	_ = addressesAddCmd.MarkFlagRequired("city")
	_ = addressesAddCmd.MarkFlagRequired("state")
	_ = addressesAddCmd.MarkFlagRequired("zip")

	addressesCmd.AddCommand(addressesAddCmd, addressesRemoveCmd)
}
