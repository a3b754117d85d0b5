// Copyright © 2026 The curt authors

// Package docs embeds the curt language reference for use by the CLI.
package docs

import _ "embed"

//go:embed lang.md
var LangGuide string
