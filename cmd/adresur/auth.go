package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adresur/adresur-go/internal/api"
)

func (c *cli) newLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and persist the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw := password
			if pw == "" {
				var err error
				pw, err = promptLine("Password: ")
				if err != nil {
					return err
				}
			}
			if err := c.app.Session.Login(cmd.Context(), args[0], pw); err != nil {
				return err
			}
			fmt.Println("Signed in as", args[0])
			if cook := c.app.Session.CookProfile(); cook != nil {
				fmt.Printf("Cook profile active: %s\n", cook.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func (c *cli) newRegisterCmd() *cobra.Command {
	var (
		fullName string
		password string
		role     string
	)
	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fullName == "" {
				return fmt.Errorf("--name is required")
			}
			pw := password
			if pw == "" {
				var err error
				pw, err = promptLine("Password: ")
				if err != nil {
					return err
				}
			}
			user, err := c.app.Client.Register(cmd.Context(), api.RegisterRequest{
				Email:    args[0],
				FullName: fullName,
				Password: pw,
				Role:     role,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s (id %d); run `adresur login %s` to sign in\n",
				user.Email, user.ID, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&role, "role", "", "account role (backend default when omitted)")
	return cmd
}

func (c *cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := c.app.Session.Logout(); err != nil {
				return err
			}
			fmt.Println("Signed out")
			return nil
		},
	}
}

func (c *cli) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if !c.app.Session.SignedIn() {
				fmt.Println("Not signed in")
				return nil
			}
			fmt.Println("Signed in; role:", c.app.Session.Role())
			if cook := c.app.Session.CookProfile(); cook != nil {
				fmt.Printf("Cook profile: %s (id %d, delivery radius %d mi)\n",
					cook.Name, cook.ID, cook.DeliveryRadius)
			}
			return nil
		},
	}
}

// promptLine reads one line from stdin after printing a prompt.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
