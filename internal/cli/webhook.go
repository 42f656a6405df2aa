package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhesend-org/dhesend-go"
)

func (a *app) webhookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage webhooks",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Register a webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, _ := cmd.Flags().GetString("endpoint")
			names, _ := cmd.Flags().GetStringSlice("event")

			params := &dhesend.CreateWebhookParams{Endpoint: endpoint}
			for _, n := range names {
				ev := dhesend.WebhookEvent(n)
				if !ev.Valid() {
					a.logger.Warn("unknown webhook event", "event", n)
				}
				params.Events = append(params.Events, ev)
			}

			resp, err := a.client.Webhooks.Create(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}
			return a.out.print(resp)
		},
	}
	create.Flags().String("endpoint", "", "URL events are posted to")
	create.Flags().StringSlice("event", nil, "event to deliver, e.g. email:delivered (repeatable)")
	if err := create.MarkFlagRequired("endpoint"); err != nil {
		panic(fmt.Sprintf("failed to mark endpoint as required: %v", err))
	}

	get := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hook, err := a.client.Webhooks.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get webhook: %w", err)
			}
			return a.out.print(hook)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hooks, err := a.client.Webhooks.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}
			return a.out.print(hooks)
		},
	}

	del := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.Webhooks.Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}
			return a.out.print(resp)
		},
	}

	refresh := &cobra.Command{
		Use:   "refresh-secret [id]",
		Short: "Replace a webhook's signing secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.Webhooks.RefreshSecret(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to refresh webhook secret: %w", err)
			}
			return a.out.print(resp)
		},
	}

	status := &cobra.Command{
		Use:       "update-status [id] [enabled|disabled]",
		Short:     "Enable or disable a webhook",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(dhesend.WebhookStatusEnabled), string(dhesend.WebhookStatusDisabled)},
		RunE: func(cmd *cobra.Command, args []string) error {
			st := dhesend.WebhookStatus(args[1])
			if st != dhesend.WebhookStatusEnabled && st != dhesend.WebhookStatusDisabled {
				return fmt.Errorf("invalid status %q: use enabled or disabled", args[1])
			}
			resp, err := a.client.Webhooks.UpdateStatus(cmd.Context(), args[0], st)
			if err != nil {
				return fmt.Errorf("failed to update webhook status: %w", err)
			}
			return a.out.print(resp)
		},
	}

	cmd.AddCommand(create, get, list, del, refresh, status)
	return cmd
}
