package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"articlecards/internal/bootstrap"
	"articlecards/internal/modules/articles/dto"
	"articlecards/internal/platform/config"
	apperrors "articlecards/internal/platform/errors"
	"articlecards/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	base       string
	data       string
	page       string
	logLevel   string
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "articlecards",
		Short:         "Render an article list as interactive cards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ./"+config.DefaultFile+" when present)")
	flags.StringVar(&opts.base, "base", "", "page location the data path is resolved against")
	flags.StringVar(&opts.data, "data", "", "article data path, relative to --base")
	flags.StringVar(&opts.page, "page", "", "page skeleton HTML (default: embedded page)")
	flags.StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn, error or off")
	flags.DurationVar(&opts.timeout, "timeout", 0, "HTTP fetch timeout, 0 for none")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newLinkCmd(opts))
	root.AddCommand(newSimulateCmd(opts))
	root.AddCommand(newTUICmd(opts))
	return root
}

func loadApp(cmd *cobra.Command, opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.BaseLocation = opts.base
	}
	if flags.Changed("data") {
		cfg.DataPath = opts.data
	}
	if flags.Changed("page") {
		cfg.PagePath = opts.page
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	return bootstrap.New(cfg, logging.New(cfg.LogLevel, cmd.ErrOrStderr()))
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Load the articles and print the rendered page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			markup, err := app.ArticlesCLI.RenderHTML(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
				return err
			}
			return os.WriteFile(out, []byte(markup+"\n"), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the page to a file instead of stdout")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one line per rendered card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			page, err := app.ArticlesCLI.Render(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), page)
			}
			for _, card := range page.Cards {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), cardLine(card))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the page state as JSON")
	return cmd
}

func newLinkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "link <pdf|doi|ark|comment> <identifier>",
		Short: "Resolve one identifier to its link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			link, err := app.ArticlesCLI.ResolveLink(cmd.Context(), args[0], args[1])
			if err != nil {
				if errors.Is(err, apperrors.ErrLinkDisabled) {
					return apperrors.ErrLinkDisabled
				}
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), link.URL)
			return err
		},
	}
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var showHTML bool
	cmd := &cobra.Command{
		Use:   "simulate <event>...",
		Short: "Render, then dispatch a scripted event sequence",
		Long: `Events address cards by zero-based position:
  title:<i>           click the card title
  download:<i>        click the download button
  menu:<i>            click inside the download menu
  menu:<i>:<kind>     click the pdf, doi or ark menu item
  body:<i>            click elsewhere on the card
  outside             click outside the list
  key:<name>          press a key, e.g. key:Escape`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events := make([]event, 0, len(args))
			for _, raw := range args {
				ev, err := parseEvent(raw)
				if err != nil {
					return err
				}
				events = append(events, ev)
			}
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			if _, err := app.ArticlesCLI.Render(cmd.Context()); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, ev := range events {
				out, err := ev.apply(cmd.Context(), app.ArticlesCLI)
				if err != nil {
					return fmt.Errorf("%s: %w", ev.raw, err)
				}
				_, _ = fmt.Fprintf(w, "%-20s %s\n", ev.raw, summarize(out))
			}
			if showHTML {
				markup, err := app.ArticlesCLI.HTML(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(w, markup)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHTML, "html", false, "print the final page after the events")
	return cmd
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the cards in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func cardLine(card dto.CardOutput) string {
	parts := []string{card.ID, card.Title}
	for _, link := range card.Links {
		if link.Enabled {
			parts = append(parts, link.URL)
		}
	}
	if card.Comment != nil && card.Comment.Enabled {
		parts = append(parts, card.Comment.URL)
	}
	return strings.Join(parts, "\t")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
