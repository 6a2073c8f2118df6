package folio

import "embed"

// EmbeddedAssets contains static assets shipped with folio: folio.css, the
// stylesheet the default views link.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
