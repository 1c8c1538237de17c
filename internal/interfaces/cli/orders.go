package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/boardsandcats/storefront/internal/domain/order"
)

var ordersCmd = &cobra.Command{
	Use:   "orders [order-id]",
	Short: "Show order history or one order",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *App, args []string) error {
		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			o, err := a.Orders.Get(ctx, id)
			if err != nil {
				return err
			}
			printOrder(o)
			return nil
		}

		orders, err := a.Orders.History(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSTATUS\tTOTAL")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				o.ID, o.Date.Format("2006-01-02"), o.Status, o.Total.StringFixed(2))
		}
		return w.Flush()
	}),
}

var checkoutFlags struct {
	addressID int64
	paymentID int64
	coupon    string
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the current cart",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		// the backend charges its copy of the cart, so it has to be current
		a.Cart.Flush(ctx)

		placed, err := a.Orders.PlaceOrder(ctx, order.CheckoutRequest{
			AddressID:       checkoutFlags.addressID,
			PaymentMethodID: checkoutFlags.paymentID,
			CouponCode:      checkoutFlags.coupon,
		})
		if err != nil {
			return err
		}

		// PlaceOrder cleared the local cart; sync the now-empty cart too
		a.Cart.Flush(ctx)

		fmt.Printf("Order #%d placed (%s), total %s\n",
			placed.ID, placed.Status, placed.Total.StringFixed(2))
		return nil
	}),
}

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List available payment methods",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		methods, err := a.Orders.PaymentMethods(ctx)
		if err != nil {
			return err
		}
		for _, m := range methods {
			fmt.Printf("%d\t%s\n", m.ID, m.Description)
		}
		return nil
	}),
}

func printOrder(o *order.Order) {
	fmt.Printf("Order #%d  %s  %s\n", o.ID, o.Date.Format("2006-01-02"), o.Status)
	if o.TrackingCode != "" {
		fmt.Printf("Tracking: %s\n", o.TrackingCode)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tQTY\tUNIT\tSUBTOTAL")
	for _, it := range o.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			it.Product.Name, it.Quantity, it.UnitPrice.StringFixed(2), it.Subtotal.StringFixed(2))
	}
	_ = w.Flush()

	if !o.Discount.IsZero() {
		fmt.Printf("Discount: -%s\n", o.Discount.StringFixed(2))
	}
	fmt.Printf("Shipping: %s\n", o.Shipping.StringFixed(2))
	fmt.Printf("Total:    %s\n", o.Total.StringFixed(2))
}

func init() {
	checkoutCmd.Flags().Int64Var(&checkoutFlags.addressID, "address", 0, "delivery address id")
	checkoutCmd.Flags().Int64Var(&checkoutFlags.paymentID, "payment", 0, "payment method id")
	checkoutCmd.Flags().StringVar(&checkoutFlags.coupon, "coupon", "", "discount coupon code")
	_ = checkoutCmd.MarkFlagRequired("address")
	_ = checkoutCmd.MarkFlagRequired("payment")
}
