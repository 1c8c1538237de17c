package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the local cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart content",
	RunE: withApp(func(_ context.Context, a *App, _ []string) error {
		printCart(a)
		return nil
	}),
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *App, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		p, err := a.Catalog.Product(ctx, id)
		if err != nil {
			return err
		}

		a.Cart.Add(*p)
		a.Cart.Flush(ctx)
		printCart(a)
		return nil
	}),
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set the quantity for a product",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, a *App, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}

		a.Cart.SetQuantity(id, qty)
		a.Cart.Flush(ctx)
		printCart(a)
		return nil
	}),
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *App, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		a.Cart.Remove(id)
		a.Cart.Flush(ctx)
		printCart(a)
		return nil
	}),
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		a.Cart.Clear()
		a.Cart.Flush(ctx)
		fmt.Println("Cart cleared")
		return nil
	}),
}

func printCart(a *App) {
	lines := a.Cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			l.Product.ID, l.Product.Name, l.Quantity,
			l.Product.Price.StringFixed(2), l.Subtotal().StringFixed(2))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %s (%d items)\n", a.Cart.Total().StringFixed(2), a.Cart.Count())
}

func init() {
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartSetCmd, cartRemoveCmd, cartClearCmd)
}
