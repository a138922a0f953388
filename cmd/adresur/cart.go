package main

import (
	"fmt"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/adresur/adresur-go/internal/domain/cart"
)

func (c *cli) newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Build a cart and check out",
	}
	cmd.AddCommand(
		c.newCartAddCmd(),
		c.newCartRemoveCmd(),
		c.newCartSetQtyCmd(),
		c.newCartShowCmd(),
		c.newCartClearCmd(),
		c.newCartCheckoutCmd(),
	)
	return cmd
}

func (c *cli) newCartAddCmd() *cobra.Command {
	var (
		quantity     int
		instructions string
	)
	cmd := &cobra.Command{
		Use:   "add <menu-item-id>",
		Short: "Add a menu item to the cart",
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
			if !item.IsAvailable {
				return fmt.Errorf("%s is currently unavailable", item.Title)
			}

			if err := c.app.Cart.AddItem(item, quantity, instructions); err != nil {
				var conflict *cart.ConflictError
				if errors.As(err, &conflict) {
					return fmt.Errorf("you can only order from one cook at a time: %w", err)
				}
				return err
			}
			if err := c.app.SaveCart(); err != nil {
				return err
			}
			fmt.Printf("Added %d x %s — cart total %s\n",
				quantity, item.Title, c.app.Cart.Total().Display())
			return nil
		},
	}
	cmd.Flags().IntVar(&quantity, "qty", 1, "quantity")
	cmd.Flags().StringVar(&instructions, "note", "", "special instructions for the cook")
	return cmd
}

func (c *cli) newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <menu-item-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c.app.Cart.RemoveItem(id)
			if err := c.app.SaveCart(); err != nil {
				return err
			}
			fmt.Println("Removed item", id)
			return nil
		},
	}
}

func (c *cli) newCartSetQtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-qty <menu-item-id> <quantity>",
		Short: "Change a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			c.app.Cart.UpdateQuantity(id, qty)
			return c.app.SaveCart()
		},
	}
}

func (c *cli) newCartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			lines := c.app.Cart.Lines()
			if len(lines) == 0 {
				fmt.Println("Cart is empty")
				return nil
			}
			for _, l := range lines {
				fmt.Printf("%4d  %2d x %-30s %8s\n",
					l.Item.ID, l.Quantity, l.Item.Title, l.Subtotal().Display())
				if l.SpecialInstructions != "" {
					fmt.Printf("      note: %s\n", l.SpecialInstructions)
				}
			}
			fmt.Printf("Total: %s (%d items)\n", c.app.Cart.Total().Display(), c.app.Cart.ItemCount())
			return nil
		},
	}
}

func (c *cli) newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c.app.Cart.Clear()
			if err := c.app.ClearCartState(); err != nil {
				return err
			}
			fmt.Println("Cart cleared")
			return nil
		},
	}
}

func (c *cli) newCartCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place the cart as one order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}

			total := c.app.Cart.Total()
			placed, err := c.app.Cart.PlaceOrder(cmd.Context(), c.app.Client)
			if err != nil {
				// The cart is untouched on failure; persist as-is for retry.
				if saveErr := c.app.SaveCart(); saveErr != nil {
					return errors.Wrap(err, saveErr.Error())
				}
				return err
			}

			if err := c.app.ClearCartState(); err != nil {
				return err
			}
			fmt.Printf("Order placed: %d order(s), %s\n", len(placed), total.Display())
			for _, o := range placed {
				fmt.Printf("  order %d — %s\n", o.ID, o.Status)
			}
			return nil
		},
	}
}
