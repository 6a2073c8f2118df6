package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eringen/folio"
)

// envKeys maps config keys to the environment variables folio reads.
var envKeys = map[string]string{
	"name":            "SITE_NAME",
	"url":             "SITE_URL",
	"description":     "SITE_DESCRIPTION",
	"author":          "SITE_AUTHOR",
	"addr":            "ADDR",
	"content_dir":     "CONTENT_DIR",
	"categories_file": "CATEGORIES_FILE",
	"static_dir":      "STATIC_DIR",
	"page_size":       "PAGE_SIZE",
	"reload_interval": "RELOAD_INTERVAL",
	"render_cache":    "RENDER_CACHE",
	"hard_wraps":      "HARD_WRAPS",
	"log_level":       "LOG_LEVEL",
	"log_format":      "LOG_FORMAT",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("render_cache", true)
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	return v
}

// readConfig loads file, or ./folio.{yaml,toml,json} when file is empty. Only an
// explicitly named file is required to exist.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		// no SetConfigType: it would also match an extensionless "folio" binary
		v.SetConfigName("folio")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindFlags makes each named flag override the config key it maps to.
// Subcommands bind in PreRun so flags sharing a key do not shadow each other.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if f := flags.Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// siteConfig resolves flags, environment, config file and defaults, in that
// order of precedence.
func siteConfig(v *viper.Viper) folio.SiteConfig {
	return folio.SiteConfig{
		Name:           v.GetString("name"),
		URL:            v.GetString("url"),
		Description:    v.GetString("description"),
		Author:         v.GetString("author"),
		Addr:           v.GetString("addr"),
		ContentDir:     v.GetString("content_dir"),
		CategoriesFile: v.GetString("categories_file"),
		StaticDir:      v.GetString("static_dir"),
		PageSize:       v.GetInt("page_size"),
		ReloadInterval: v.GetDuration("reload_interval"),
		RenderCache:    v.GetBool("render_cache"),
		HardWraps:      v.GetBool("hard_wraps"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
	}
}
