package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) apiKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apikey",
		Aliases: []string{"api-key"},
		Short:   "Manage API keys",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			key, err := a.client.APIKeys.Create(cmd.Context(), title)
			if err != nil {
				return fmt.Errorf("failed to create API key: %w", err)
			}
			a.logger.Warn("store the token now, it is not shown again", "id", key.ID)
			return a.out.print(key)
		},
	}
	create.Flags().StringP("title", "t", "", "key title")

	list := &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := a.client.APIKeys.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list API keys: %w", err)
			}
			return a.out.print(keys)
		},
	}

	del := &cobra.Command{
		Use:   "delete [id]",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.APIKeys.Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete API key: %w", err)
			}
			return a.out.print(resp)
		},
	}

	cmd.AddCommand(create, list, del)
	return cmd
}
