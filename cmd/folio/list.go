package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	var absolute bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the route of every post, newest first",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindFlags(v, cmd.Flags(), map[string]string{"url": "url"})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := siteConfig(v)
			if cfg.ContentDir == "" {
				cfg.ContentDir = "content"
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			base := ""
			if absolute {
				base = cfg.URL
				if base == "" {
					base = "http://localhost:3000"
				}
			}
			return runList(cmd.Context(), os.DirFS(cfg.ContentDir), catalog, base, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&absolute, "absolute", false, "print absolute URLs using the site URL")
	cmd.Flags().String("url", "", "canonical site URL (SITE_URL)")
	return cmd
}

// runList prints one route per line. With base set, routes are absolute URLs.
func runList(ctx context.Context, contentFS fs.FS, catalog *content.Catalog, base string, out io.Writer) error {
	res, err := content.NewLoader(contentFS, catalog).Load(ctx)
	if err != nil {
		return err
	}
	index, err := content.NewIndex(res.Posts, catalog)
	if err != nil {
		return err
	}
	for _, r := range index.Routes() {
		if base != "" {
			fmt.Fprintln(out, folio.BuildURL(base, "blog", r.Category, r.Slug))
			continue
		}
		fmt.Fprintf(out, "/blog/%s/%s/\n", r.Category, r.Slug)
	}
	return nil
}
