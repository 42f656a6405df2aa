package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhesend-org/dhesend-go"
)

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	cfgFile string
	cfg     *Config
	logger  *slog.Logger
	out     *printer
	client  *dhesend.Client

	// transport is the base transport; tests leave it nil.
	transport http.RoundTripper
}

// NewRootCommand builds the dhesend command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "dhesend",
		Short: "Dhesend CLI",
		Long: `dhesend is the command-line interface for the Dhesend email API.

Send emails and manage domains, API keys and webhooks from your terminal.
The API key is read from --api-key, DHESEND_API_KEY (a local .env file
included) or api_key in ~/.dhesend/config.yaml.`,
		Version:           dhesend.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.dhesend/config.yaml)")
	root.PersistentFlags().String("api-key", "", "Dhesend API key")
	root.PersistentFlags().String("base-url", "", "API base URL")
	root.PersistentFlags().StringP("output", "o", "json", "output format: json, yaml")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every request to stderr")

	root.AddCommand(
		a.emailCommand(),
		a.domainCommand(),
		a.apiKeyCommand(),
		a.webhookCommand(),
	)

	return root
}

// setup loads configuration and builds the client before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg.Verbose)
	a.out = &printer{w: a.stdout, format: cfg.Output}

	base := a.transport
	if base == nil {
		base = http.DefaultTransport
	}

	opts := []dhesend.Option{
		dhesend.WithHTTPClient(&http.Client{
			Transport: &loggingTransport{next: base, logger: a.logger},
		}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, dhesend.WithBaseURL(cfg.BaseURL))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, dhesend.WithUserAgent(cfg.UserAgent))
	}

	client, err := dhesend.New(cfg.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	a.client = client

	a.logger.Debug("client ready", "base_url", client.BaseURL())
	return nil
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}
