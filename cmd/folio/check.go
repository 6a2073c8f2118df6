package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/media"
)

type checkReport struct {
	Posts    int
	Rejected int
	Warnings int
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the content once and report every rejected document",
		Long: `check runs a full load cycle, prints one line per rejected document and
per unreadable cover image, and exits non-zero when any document was rejected.`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindFlags(v, cmd.Flags(), map[string]string{"static": "static_dir"})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := siteConfig(v)
			if cfg.ContentDir == "" {
				cfg.ContentDir = "content"
			}
			if cfg.StaticDir == "" {
				cfg.StaticDir = "public"
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			report, err := runCheck(cmd.Context(), os.DirFS(cfg.ContentDir), os.DirFS(cfg.StaticDir), catalog, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if report.Rejected > 0 {
				return fmt.Errorf("%d document(s) rejected", report.Rejected)
			}
			return nil
		},
	}
	cmd.Flags().String("static", "", "static assets directory (STATIC_DIR)")
	return cmd
}

func runCheck(ctx context.Context, contentFS, staticFS fs.FS, catalog *content.Catalog, out io.Writer) (checkReport, error) {
	res, err := content.NewLoader(contentFS, catalog).Load(ctx)
	if err != nil {
		return checkReport{}, err
	}
	index, err := content.NewIndex(res.Posts, catalog)
	if err != nil {
		return checkReport{}, err
	}

	report := checkReport{Posts: index.Len(), Rejected: len(res.Problems)}
	for _, p := range res.Problems {
		fmt.Fprintf(out, "reject  %s: %v [%s]\n", p.Path, p.Err, p.Reason())
	}

	prober := media.NewProber(staticFS, "/public")
	for _, p := range index.All() {
		if p.CoverImage == "" {
			continue
		}
		if _, err := prober.Lookup(p.CoverImage); err != nil && !errors.Is(err, media.ErrRemote) {
			report.Warnings++
			fmt.Fprintf(out, "warn    %s: cover image %s: %v\n", p.SourcePath, p.CoverImage, err)
		}
	}

	fmt.Fprintf(out, "%d posts, %d rejected, %d warnings\n", report.Posts, report.Rejected, report.Warnings)
	return report, nil
}
