package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardsandcats/storefront/internal/domain/identity"
	"github.com/boardsandcats/storefront/internal/domain/shared"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the signed-in account",
	RunE: withApp(func(_ context.Context, a *App, _ []string) error {
		user := a.Identity.CurrentUser()
		if user == nil {
			return shared.ErrNotAuthenticated
		}
		fmt.Printf("Name:  %s\n", user.DisplayName)
		fmt.Printf("Email: %s\n", user.Username)
		fmt.Printf("Phone: %s\n", user.Phone)
		return nil
	}),
}

var accountUpdateFlags struct {
	name  string
	phone string
	email string
}

var accountUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile details",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		current := a.Identity.CurrentUser()
		if current == nil {
			return shared.ErrNotAuthenticated
		}

		upd := identity.ProfileUpdate{
			DisplayName: current.DisplayName,
			Phone:       current.Phone,
			Username:    current.Username,
		}
		if accountUpdateFlags.name != "" {
			upd.DisplayName = accountUpdateFlags.name
		}
		if accountUpdateFlags.phone != "" {
			upd.Phone = accountUpdateFlags.phone
		}
		if accountUpdateFlags.email != "" {
			upd.Username = accountUpdateFlags.email
		}

		user, err := a.Identity.UpdateProfile(ctx, upd)
		if err != nil {
			return err
		}
		fmt.Printf("Profile updated for %s\n", user.Username)
		return nil
	}),
}

var passwordFlags struct {
	current string
	next    string
}

var accountPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the account password",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		current := passwordFlags.current
		if current == "" {
			var err error
			current, err = prompt("Current password: ")
			if err != nil {
				return err
			}
		}
		next := passwordFlags.next
		if next == "" {
			var err error
			next, err = prompt("New password: ")
			if err != nil {
				return err
			}
		}

		err := a.Identity.ChangePassword(ctx, identity.PasswordUpdate{
			CurrentPassword: current,
			NewPassword:     next,
		})
		if err != nil {
			return err
		}
		fmt.Println("Password changed")
		return nil
	}),
}

func init() {
	accountUpdateCmd.Flags().StringVar(&accountUpdateFlags.name, "name", "", "display name")
	accountUpdateCmd.Flags().StringVar(&accountUpdateFlags.phone, "phone", "", "contact phone")
	accountUpdateCmd.Flags().StringVar(&accountUpdateFlags.email, "email", "", "account email")

	accountPasswordCmd.Flags().StringVar(&passwordFlags.current, "current", "", "current password")
	accountPasswordCmd.Flags().StringVar(&passwordFlags.next, "new", "", "new password")

	accountCmd.AddCommand(accountUpdateCmd, accountPasswordCmd)
	rootCmd.AddCommand(accountCmd)
}
