package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogapp "github.com/boardsandcats/storefront/internal/application/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the shop catalog",
}

var browseFlags struct {
	search   string
	category int64
	promo    bool
	sortBy   string
	page     int
	pageSize int
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		page, err := a.Catalog.Browse(ctx, catalogapp.BrowseQuery{
			Search:     browseFlags.search,
			CategoryID: browseFlags.category,
			PromoOnly:  browseFlags.promo,
			SortBy:     browseFlags.sortBy,
			Page:       browseFlags.page,
			PageSize:   browseFlags.pageSize,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY")
		for _, p := range page.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				p.ID, p.Name, p.Price.StringFixed(2), p.Stock, p.Category.Name)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nPage %d/%d (%d products)\n", page.Page, page.TotalPages, page.Total)
		return nil
	}),
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show product details",
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

		fmt.Printf("%s (#%d)\n", p.Name, p.ID)
		fmt.Printf("Price:    %s\n", p.Price.StringFixed(2))
		fmt.Printf("Stock:    %d\n", p.Stock)
		fmt.Printf("Category: %s\n", p.Category.Name)
		if p.Players != "" {
			fmt.Printf("Players:  %s\n", p.Players)
		}
		if p.Duration != "" {
			fmt.Printf("Duration: %s\n", p.Duration)
		}
		if len(p.Mechanics) > 0 {
			fmt.Printf("Mechanics: %s\n", p.Mechanics)
		}
		if p.Description != "" {
			fmt.Printf("\n%s\n", p.Description)
		}
		return nil
	}),
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		categories, err := a.Catalog.Categories(ctx)
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%d\t%s\n", c.ID, c.Name)
		}
		return nil
	}),
}

func init() {
	catalogListCmd.Flags().StringVar(&browseFlags.search, "search", "", "filter by name or description")
	catalogListCmd.Flags().Int64Var(&browseFlags.category, "category", 0, "filter by category id")
	catalogListCmd.Flags().BoolVar(&browseFlags.promo, "promo", false, "only promotional products")
	catalogListCmd.Flags().StringVar(&browseFlags.sortBy, "sort", "", "sort order: name, price_asc, price_desc")
	catalogListCmd.Flags().IntVar(&browseFlags.page, "page", 1, "page number")
	catalogListCmd.Flags().IntVar(&browseFlags.pageSize, "page-size", catalogapp.DefaultPageSize, "products per page")

	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogCategoriesCmd)
}
