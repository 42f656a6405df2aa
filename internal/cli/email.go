package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhesend-org/dhesend-go"
)

func (a *app) emailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send and inspect emails",
	}
	cmd.AddCommand(a.emailSendCommand(), a.emailListCommand(), a.emailGetCommand())
	return cmd
}

func (a *app) emailSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send an email",
		Long: `Send an email. Local files given with --attach are uploaded as
multipart form data; --attach-url attachments are fetched by the server.
The two cannot be combined.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			params := &dhesend.SendEmailParams{}
			params.From, _ = flags.GetString("from")
			params.To, _ = flags.GetStringSlice("to")
			params.Cc, _ = flags.GetStringSlice("cc")
			params.Bcc, _ = flags.GetStringSlice("bcc")
			params.ReplyTo, _ = flags.GetStringSlice("reply-to")
			params.Subject, _ = flags.GetString("subject")
			params.HTMLBody, _ = flags.GetString("html")
			params.TextBody, _ = flags.GetString("text")

			tags, _ := flags.GetStringSlice("tag")
			for _, t := range tags {
				name, value, ok := strings.Cut(t, "=")
				if !ok {
					return fmt.Errorf("invalid tag %q: use name=value", t)
				}
				params.Tags = append(params.Tags, dhesend.Tag{Name: name, Value: value})
			}

			files, _ := flags.GetStringSlice("attach")
			for _, path := range files {
				att, err := dhesend.NewFileAttachment(path)
				if err != nil {
					return err
				}
				params.Attachments = append(params.Attachments, att)
			}
			urls, _ := flags.GetStringSlice("attach-url")
			for _, u := range urls {
				params.Attachments = append(params.Attachments, dhesend.URLAttachment{URL: u})
			}

			resp, err := a.client.Emails.Send(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to send email: %w", err)
			}
			a.logger.Info("email sent", "message_id", resp.MessageID)
			return a.out.print(resp)
		},
	}

	flags := cmd.Flags()
	flags.String("from", "", `sender, e.g. "Acme <hello@acme.com>"`)
	flags.StringSlice("to", nil, "recipient address (repeatable)")
	flags.StringSlice("cc", nil, "CC address (repeatable)")
	flags.StringSlice("bcc", nil, "BCC address (repeatable)")
	flags.StringSlice("reply-to", nil, "reply-to address (repeatable)")
	flags.StringP("subject", "s", "", "subject line")
	flags.String("html", "", "HTML body")
	flags.String("text", "", "plain text body")
	flags.StringSlice("tag", nil, "tag as name=value (repeatable)")
	flags.StringSlice("attach", nil, "local file to attach (repeatable)")
	flags.StringSlice("attach-url", nil, "URL of a file to attach (repeatable)")
	if err := cmd.MarkFlagRequired("subject"); err != nil {
		panic(fmt.Sprintf("failed to mark subject as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("to"); err != nil {
		panic(fmt.Sprintf("failed to mark to as required: %v", err))
	}

	return cmd
}

func (a *app) emailListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sent emails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, _ := cmd.Flags().GetStringSlice("filter")
			query := url.Values{}
			for _, f := range filters {
				key, value, ok := strings.Cut(f, "=")
				if !ok {
					return fmt.Errorf("invalid filter %q: use key=value", f)
				}
				query.Add(key, value)
			}

			list, err := a.client.Emails.List(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to list emails: %w", err)
			}
			return a.out.print(list)
		},
	}
	cmd.Flags().StringSlice("filter", nil, "query filter as key=value (repeatable)")
	return cmd
}

func (a *app) emailGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show an email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := a.client.Emails.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get email: %w", err)
			}
			return a.out.print(email)
		},
	}
}
