package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adresur/adresur-go/internal/domain/order"
)

func (c *cli) newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "View orders and drive their lifecycle",
	}
	cmd.AddCommand(
		c.newOrdersListCmd(),
		c.newOrdersShowCmd(),
		c.newOrdersAdvanceCmd(),
		c.newOrdersCancelCmd(),
		c.newOrdersDeleteCmd(),
		c.newOrdersSummaryCmd(),
	)
	return cmd
}

func (c *cli) newOrdersListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			if status != order.FilterAll && !order.Status(status).Valid() {
				return fmt.Errorf("unknown status %q", status)
			}

			orders, err := c.app.Client.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			filtered := order.FilterByStatus(orders, status)
			if len(filtered) == 0 {
				fmt.Println("No orders")
				return nil
			}
			for _, o := range filtered {
				c.printOrderLine(o)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", order.FilterAll, "filter by status (pending, preparing, ready, completed, cancelled, all)")
	return cmd
}

func (c *cli) printOrderLine(o order.Order) {
	title := fmt.Sprintf("item %d", o.MenuItemID)
	if o.MenuItem != nil {
		title = o.MenuItem.Title
	}
	fmt.Printf("%4d  %-10s %2d x %-25s %8s\n", o.ID, o.Status, o.Quantity, title, o.TotalPrice.Display())

	// Offer only the transitions the state machine allows for this role.
	if next := order.AllowedForRole(c.app.Session.Role(), o.Status); len(next) > 0 {
		fmt.Printf("      next: %v\n", next)
	}
}

func (c *cli) newOrdersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			o, err := c.app.Client.GetOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			c.printOrderLine(o)
			if o.SpecialInstructions != "" {
				fmt.Println("      note:", o.SpecialInstructions)
			}
			if o.CookName != "" {
				fmt.Println("      cook:", o.CookName)
			}
			if o.BuyerName != "" {
				fmt.Printf("      buyer: %s <%s>\n", o.BuyerName, o.BuyerMail)
			}
			fmt.Println("      updated:", o.UpdatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func (c *cli) newOrdersAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id> <status>",
		Short: "Move an order to its next status (cook only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			if c.app.Session.Role() != order.RoleCook {
				return fmt.Errorf("only cooks can update order status")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			target := order.Status(args[1])
			if !target.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}

			o, err := c.app.Client.GetOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			refreshed, err := c.app.Workflow.RequestTransition(cmd.Context(), o, target)
			if err != nil {
				return err
			}
			fmt.Printf("Order %d -> %s\n", id, target)
			fmt.Printf("%d order(s) in your kitchen\n", len(refreshed))
			return nil
		},
	}
}

func (c *cli) newOrdersCancelCmd() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an order (cook only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			if c.app.Session.Role() != order.RoleCook {
				return fmt.Errorf("only cooks can cancel orders")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			o, err := c.app.Client.GetOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			if _, err := c.app.Workflow.Cancel(cmd.Context(), o, order.CancelReason(reason)); err != nil {
				return err
			}
			fmt.Printf("Order %d cancelled", id)
			if reason != "" {
				// Shown locally only; the backend records just the status.
				fmt.Printf(" (%s)", reason)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", fmt.Sprintf("informational reason %v", order.CancelReasons))
	return cmd
}

func (c *cli) newOrdersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Client.DeleteOrder(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted order", id)
			return nil
		},
	}
}

func (c *cli) newOrdersSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Aggregate view of your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			orders, err := c.app.Client.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			s := order.Summarize(orders)

			fmt.Printf("Orders: %d total, %d active\n", s.TotalOrders, s.Active)
			for _, st := range order.Statuses {
				fmt.Printf("  %-10s %d\n", st, s.CountByStatus[st])
			}
			fmt.Printf("Revenue (completed): %s\n", s.Revenue.Display())
			if len(s.PopularItems) > 0 {
				fmt.Println("Quantity by menu item:")
				for id, qty := range s.PopularItems {
					fmt.Printf("  item %-6d %d\n", id, qty)
				}
			}
			return nil
		},
	}
}
