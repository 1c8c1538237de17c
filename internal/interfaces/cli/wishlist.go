package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show the wishlist",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		products, err := a.Wishlist.List(ctx)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			fmt.Println("Wishlist is empty")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
		}
		return w.Flush()
	}),
}

var wishlistToggleCmd = &cobra.Command{
	Use:   "toggle <product-id>",
	Short: "Add or remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *App, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		in, err := a.Wishlist.Toggle(ctx, id)
		if err != nil {
			return err
		}
		if in {
			fmt.Println("Added to wishlist")
		} else {
			fmt.Println("Removed from wishlist")
		}
		return nil
	}),
}

func init() {
	wishlistCmd.AddCommand(wishlistToggleCmd)
}
