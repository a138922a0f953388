package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adresur/adresur-go/internal/api"
	"github.com/adresur/adresur-go/internal/domain/catalog"
)

func (c *cli) newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse and manage menu items",
	}
	cmd.AddCommand(
		c.newMenuListCmd(),
		c.newMenuShowCmd(),
		c.newMenuCreateCmd(),
		c.newMenuUpdateCmd(),
		c.newMenuDeleteCmd(),
	)
	return cmd
}

func (c *cli) newMenuListCmd() *cobra.Command {
	var cookID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available menu items, grouped by cook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cookID != 0 {
				items, err := c.app.Client.ListCookMenuItems(cmd.Context(), cookID)
				if err != nil {
					return err
				}
				printItems(items)
				return nil
			}

			view, err := catalog.Load(cmd.Context(), c.app.Client)
			if err != nil {
				return err
			}
			for id, items := range view.ItemsByCook() {
				name := view.CookName(id)
				if name == "" {
					name = fmt.Sprintf("cook %d", id)
				}
				fmt.Printf("— %s —\n", name)
				printItems(items)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&cookID, "cook", 0, "restrict to one cook's menu")
	return cmd
}

func printItems(items []catalog.MenuItem) {
	if len(items) == 0 {
		fmt.Println("  (no items)")
		return
	}
	for _, item := range items {
		marker := " "
		if !item.IsAvailable {
			marker = "x"
		}
		fmt.Printf("%s %4d  %-30s %8s\n", marker, item.ID, item.Title, item.Price.Display())
	}
}

func (c *cli) newMenuShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := c.app.Client.GetMenuItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (id %d) — %s\n", item.Title, item.ID, item.Price.Display())
			if item.Description != "" {
				fmt.Println(item.Description)
			}
			if !item.IsAvailable {
				fmt.Println("Currently unavailable")
			}
			return nil
		},
	}
}

func (c *cli) newMenuCreateCmd() *cobra.Command {
	var (
		description string
		price       float64
		photoURL    string
		unavailable bool
	)
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Publish a new menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			if c.app.Session.CookProfile() == nil {
				return fmt.Errorf("no cook profile: run `adresur cooks create` first")
			}
			if price <= 0 {
				return fmt.Errorf("--price must be a positive amount")
			}
			available := !unavailable
			req := api.MenuItemRequest{
				Title:       args[0],
				Description: description,
				Price:       &price,
				IsAvailable: &available,
			}
			if photoURL != "" {
				req.PhotoURL = &photoURL
			}
			item, err := c.app.Client.CreateMenuItem(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Published %s (id %d) at %s\n", item.Title, item.ID, item.Price.Display())
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().Float64Var(&price, "price", 0, "price in dollars")
	cmd.Flags().StringVar(&photoURL, "photo-url", "", "item photo URL")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "publish as unavailable")
	return cmd
}

func (c *cli) newMenuUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		price       float64
		available   bool
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := api.MenuItemRequest{Title: title, Description: description}
			if cmd.Flags().Changed("price") {
				if price <= 0 {
					return fmt.Errorf("--price must be a positive amount")
				}
				req.Price = &price
			}
			if cmd.Flags().Changed("available") {
				req.IsAvailable = &available
			}
			item, err := c.app.Client.UpdateMenuItem(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s (id %d)\n", item.Title, item.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "item title")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().Float64Var(&price, "price", 0, "price in dollars")
	cmd.Flags().BoolVar(&available, "available", true, "availability flag")
	return cmd
}

func (c *cli) newMenuDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Client.DeleteMenuItem(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted menu item", id)
			return nil
		},
	}
}
