// Command adresur is the terminal client for the Adresur home-cooked-meal
// marketplace: browse menus, build a cart, place orders, and run a kitchen.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adresur/adresur-go/internal/app"
)

func main() {
	c := &cli{}
	root := c.newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cli carries the wired application between cobra callbacks.
type cli struct {
	app *app.App

	flagBaseURL  string
	flagStateDir string
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "adresur",
		Short:         "Order home-cooked meals and run your kitchen from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if c.flagBaseURL != "" {
				cfg.BaseURL = c.flagBaseURL
			}
			if c.flagStateDir != "" {
				cfg.StateDir = c.flagStateDir
			}

			a, ctx, err := app.Setup(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			c.app = a
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.app != nil {
				_ = c.app.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.flagBaseURL, "base-url", "", "backend base URL (overrides config)")
	root.PersistentFlags().StringVar(&c.flagStateDir, "state-dir", "", "state directory (overrides config)")

	root.AddCommand(
		c.newLoginCmd(),
		c.newRegisterCmd(),
		c.newLogoutCmd(),
		c.newWhoamiCmd(),
		c.newCooksCmd(),
		c.newMenuCmd(),
		c.newCartCmd(),
		c.newOrdersCmd(),
		c.newMessagesCmd(),
		c.newHealthCmd(),
	)
	return root
}

// requireAuth guards commands that need a signed-in session.
func (c *cli) requireAuth() error {
	if !c.app.Session.SignedIn() {
		return fmt.Errorf("not signed in: run `adresur login` first")
	}
	return nil
}

func (c *cli) newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Client.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println("backend:", status.Status)
			return nil
		},
	}
}
