package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adresur/adresur-go/internal/api"
)

func (c *cli) newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read and send order messages",
	}
	cmd.AddCommand(
		c.newMessagesListCmd(),
		c.newMessagesSendCmd(),
		c.newMessagesInboxCmd(),
	)
	return cmd
}

func (c *cli) newMessagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <order-id>",
		Short: "Show the message thread for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msgs, err := c.app.Client.ListOrderMessages(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Println("No messages on this order")
				return nil
			}
			for _, m := range msgs {
				fmt.Printf("[%s] user %d: %s\n",
					m.CreatedAt.Format("2006-01-02 15:04"), m.SenderID, m.Content)
			}
			return nil
		},
	}
}

func (c *cli) newMessagesSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <order-id> <content>...",
		Short: "Send a message on an order",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			content := strings.TrimSpace(strings.Join(args[1:], " "))
			if content == "" {
				return fmt.Errorf("message content is empty")
			}
			msg, err := c.app.Client.CreateMessage(cmd.Context(), api.CreateMessageRequest{
				OrderID: id,
				Content: content,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Sent message %d on order %d\n", msg.ID, msg.OrderID)
			return nil
		},
	}
}

func (c *cli) newMessagesInboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "Show every message visible to you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireAuth(); err != nil {
				return err
			}
			msgs, err := c.app.Client.ListMyMessages(cmd.Context())
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Println("No messages")
				return nil
			}
			for _, m := range msgs {
				fmt.Printf("[%s] order %d, user %d: %s\n",
					m.CreatedAt.Format("2006-01-02 15:04"), m.OrderID, m.SenderID, m.Content)
			}
			return nil
		},
	}
}
