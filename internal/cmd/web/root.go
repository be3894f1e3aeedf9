package web

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	platformcmd "github.com/aichenitrkl/chapterweb/internal/platform/cmd"
)

// NewRootCommand builds the chapterweb command tree. Flags default to the
// values loaded from the environment into cfg.
func NewRootCommand(cfg Config, logger *log.Logger) *cobra.Command {
	if logger == nil {
		logger = log.Default()
	}
	root := &cobra.Command{
		Use:           "chapterweb",
		Short:         "AIChE NIT Rourkela chapter website",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "content directory (default: embedded content)")
	flags.StringVar(&cfg.AssetBase, "asset-base", cfg.AssetBase, "URL prefix for stylesheets and scripts")
	flags.DurationVar(&cfg.TransitionIn, "transition-in", cfg.TransitionIn, "overlay enter duration")
	flags.DurationVar(&cfg.TransitionOut, "transition-out", cfg.TransitionOut, "overlay exit duration")
	flags.DurationVar(&cfg.NavigateDelay, "navigate-delay", cfg.NavigateDelay, "route swap delay behind the overlay")

	root.AddCommand(
		newServeCommand(&cfg, logger),
		newExportCommand(&cfg, logger),
		newTraceCommand(&cfg, logger),
	)
	return root
}

func newServeCommand(cfg *Config, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the website over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return platformcmd.RunWithTelemetry(cmd.Context(), platformcmd.ServiceWeb, func(ctx context.Context) error {
				return Serve(ctx, *cfg, logger)
			})
		},
	}
	cmd.Flags().StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	cmd.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the content directory on change")
	cmd.Flags().BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto from a proxy")
	return cmd
}

func newExportCommand(cfg *Config, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page into a static site directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return platformcmd.RunWithTelemetry(cmd.Context(), platformcmd.ServiceExport, func(ctx context.Context) error {
				_, err := Export(ctx, *cfg, logger)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&cfg.ExportDir, "out", "o", cfg.ExportDir, "output directory")
	return cmd
}

func newTraceCommand(cfg *Config, logger *log.Logger) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "trace-transition PATH...",
		Short: "Run the site's transition clock and render each route swap",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := Trace(cmd.Context(), *cfg, TraceOptions{Paths: args, Interval: interval}, logger)
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "delay between successive requests")
	return cmd
}
