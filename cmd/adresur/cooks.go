package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adresur/adresur-go/internal/api"
)

func (c *cli) newCooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cooks",
		Short: "Browse and manage cook profiles",
	}
	cmd.AddCommand(
		c.newCooksListCmd(),
		c.newCooksShowCmd(),
		c.newCooksCreateCmd(),
		c.newCooksUpdateCmd(),
		c.newCooksDeleteCmd(),
	)
	return cmd
}

func (c *cli) newCooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every cook on the platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cooks, err := c.app.Client.ListCooks(cmd.Context())
			if err != nil {
				return err
			}
			if len(cooks) == 0 {
				fmt.Println("No cooks yet")
				return nil
			}
			for _, cook := range cooks {
				fmt.Printf("%4d  %-30s delivery radius %d mi\n", cook.ID, cook.Name, cook.DeliveryRadius)
				if cook.Bio != "" {
					fmt.Printf("      %s\n", cook.Bio)
				}
			}
			return nil
		},
	}
}

func (c *cli) newCooksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one cook profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cook, err := c.app.Client.GetCook(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (id %d)\n", cook.Name, cook.ID)
			if cook.Bio != "" {
				fmt.Println(cook.Bio)
			}
			fmt.Printf("Delivery radius: %d mi\nSince: %s\n",
				cook.DeliveryRadius, cook.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func (c *cli) newCooksCreateCmd() *cobra.Command {
	var (
		bio      string
		photoURL string
		radius   int
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register the signed-in user as a cook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			req := api.CookProfileRequest{Name: args[0], DeliveryRadius: &radius}
			if bio != "" {
				req.Bio = &bio
			}
			if photoURL != "" {
				req.PhotoURL = &photoURL
			}
			cook, err := c.app.Client.CreateCookProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Cook profile created: %s (id %d)\n", cook.Name, cook.ID)
			return c.app.Session.RefreshCookProfile(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&bio, "bio", "", "short kitchen bio")
	cmd.Flags().StringVar(&photoURL, "photo-url", "", "profile photo URL")
	cmd.Flags().IntVar(&radius, "delivery-radius", 5, "delivery radius in miles")
	return cmd
}

func (c *cli) newCooksUpdateCmd() *cobra.Command {
	var (
		name     string
		bio      string
		photoURL string
		radius   int
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a cook profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var req api.CookProfileRequest
			req.Name = name
			if cmd.Flags().Changed("bio") {
				req.Bio = &bio
			}
			if cmd.Flags().Changed("photo-url") {
				req.PhotoURL = &photoURL
			}
			if cmd.Flags().Changed("delivery-radius") {
				req.DeliveryRadius = &radius
			}
			cook, err := c.app.Client.UpdateCookProfile(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated cook profile %d (%s)\n", cook.ID, cook.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "kitchen name")
	cmd.Flags().StringVar(&bio, "bio", "", "short kitchen bio")
	cmd.Flags().StringVar(&photoURL, "photo-url", "", "profile photo URL")
	cmd.Flags().IntVar(&radius, "delivery-radius", 0, "delivery radius in miles")
	return cmd
}

func (c *cli) newCooksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a cook profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Client.DeleteCookProfile(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted cook profile", id)
			return c.app.Session.RefreshCookProfile(cmd.Context())
		},
	}
}

// parseID parses a positive numeric id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
