package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) domainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage sending domains",
	}

	create := &cobra.Command{
		Use:   "create [name]",
		Short: "Register a sending domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.Domains.Create(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create domain: %w", err)
			}
			a.logger.Info(resp.Message, "domain", resp.Name)
			return a.out.print(resp)
		},
	}

	get := &cobra.Command{
		Use:   "get [name]",
		Short: "Show a domain and its DNS records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := a.client.Domains.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get domain: %w", err)
			}
			return a.out.print(domain)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domains, err := a.client.Domains.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list domains: %w", err)
			}
			return a.out.print(domains)
		},
	}

	del := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.Domains.Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete domain: %w", err)
			}
			return a.out.print(resp)
		},
	}

	cmd.AddCommand(create, get, list, del)
	return cmd
}
