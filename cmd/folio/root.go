package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/internal/logger"
)

func newRootCmd() *cobra.Command {
	v := newViper()
	var cfgFile string

	root := &cobra.Command{
		Use:   "folio",
		Short: "folio - a markdown blog served with Go, Echo, and templ",
		Long: `folio loads markdown posts with frontmatter from a content directory,
groups them into categories and serves them as a paginated blog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v, cfgFile); err != nil {
				return err
			}
			format := v.GetString("log_format")
			if format == "" && cmd.Name() != "serve" {
				format = "text"
			}
			logger.SetLogger(logger.New(os.Stderr, v.GetString("log_level"), format))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./folio.yaml when present)")
	flags.String("content", "", "content directory (CONTENT_DIR)")
	flags.String("categories", "", "YAML category list (CATEGORIES_FILE)")
	flags.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	flags.String("log-format", "", "json or text (LOG_FORMAT)")
	bindFlags(v, flags, map[string]string{
		"content":    "content_dir",
		"categories": "categories_file",
		"log-level":  "log_level",
		"log-format": "log_format",
	})

	root.AddCommand(
		newServeCmd(v),
		newCheckCmd(v),
		newListCmd(v),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
			return err
		},
	}
}
