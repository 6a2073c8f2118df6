package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/folio"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindFlags(v, cmd.Flags(), map[string]string{
				"addr":            "addr",
				"static":          "static_dir",
				"url":             "url",
				"page-size":       "page_size",
				"reload-interval": "reload_interval",
				"render-cache":    "render_cache",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := folio.New(siteConfig(v), folio.DefaultViews())
			return app.Start(ctx)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "listen address (ADDR)")
	flags.String("static", "", "static assets directory (STATIC_DIR)")
	flags.String("url", "", "canonical site URL (SITE_URL)")
	flags.Int("page-size", 0, "posts per page (PAGE_SIZE)")
	flags.Duration("reload-interval", 0, "rebuild the index when older than this, 0 to load once (RELOAD_INTERVAL)")
	flags.Bool("render-cache", true, "memoize rendered posts (RENDER_CACHE)")
	return cmd
}
