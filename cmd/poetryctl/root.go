package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sindhipoetry/backend/internal/adapter/api"
	"github.com/sindhipoetry/backend/internal/app"
	"github.com/sindhipoetry/backend/internal/config"
)

// cli carries what every subcommand needs once the root command has loaded
// the configuration.
type cli struct {
	apiURL string
	token  string

	cfg    *config.ClientConfig
	log    *slog.Logger
	client *api.Client
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "poetryctl",
		Short:         "Author couplets and manage the Sindhi poetry catalogue",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "API base URL (or set POETRY_API_URL)")
	root.PersistentFlags().StringVar(&c.token, "token", "", "admin bearer token (or set POETRY_API_TOKEN)")

	root.AddCommand(newCoupletCmd(c), newDictCmd(c), newPoetsCmd(c))
	return root
}

func (c *cli) setup() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		cfg.API.BaseURL = strings.TrimSpace(c.apiURL)
	}
	if c.token != "" {
		cfg.API.Token = c.token
	}

	c.cfg = cfg
	c.log = app.NewLogger(cfg.Log)
	c.client = api.New(cfg.API, c.log)
	return nil
}
