package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boardsandcats/storefront/internal/domain/identity"
)

var loginFlags struct {
	username string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the shop",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		username := loginFlags.username
		if username == "" {
			var err error
			username, err = prompt("Email: ")
			if err != nil {
				return err
			}
		}
		password := loginFlags.password
		if password == "" {
			var err error
			password, err = prompt("Password: ")
			if err != nil {
				return err
			}
		}

		user, err := a.Identity.Login(ctx, identity.Credentials{
			Username: username,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s (%s)\n", user.DisplayName, user.Username)
		if !a.Cart.IsEmpty() {
			fmt.Printf("Cart: %d item(s), total %s\n", a.Cart.Count(), a.Cart.Total())
		}
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the cart",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		a.Identity.Logout(ctx)
		fmt.Println("Signed out")
		return nil
	}),
}

var registerFlags struct {
	name     string
	email    string
	password string
	phone    string
	cpf      string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
		err := a.Identity.Register(ctx, identity.Registration{
			DisplayName: registerFlags.name,
			Username:    registerFlags.email,
			Password:    registerFlags.password,
			Phone:       registerFlags.phone,
			CPF:         registerFlags.cpf,
		})
		if err != nil {
			return err
		}
		fmt.Println("Account created, you can now log in")
		return nil
	}),
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().StringVarP(&loginFlags.username, "username", "u", "", "account email")
	loginCmd.Flags().StringVarP(&loginFlags.password, "password", "p", "", "account password")

	registerCmd.Flags().StringVar(&registerFlags.name, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerFlags.email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerFlags.password, "password", "", "account password")
	registerCmd.Flags().StringVar(&registerFlags.phone, "phone", "", "contact phone")
	registerCmd.Flags().StringVar(&registerFlags.cpf, "cpf", "", "CPF document number")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("phone")
	_ = registerCmd.MarkFlagRequired("cpf")
}
